package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "cidian/docs"
	"cidian/internal/ai/component"
	"cidian/internal/config"
	"cidian/internal/handler"
	adminHandler "cidian/internal/handler/admin"
	authHandler "cidian/internal/handler/auth"
	dictHandler "cidian/internal/handler/dictionary"
	"cidian/internal/pkg/cache"
	"cidian/internal/pkg/storagefactory"
	"cidian/internal/server/middleware"
	"cidian/internal/service"
)

const (
	defaultJWTSecret   = "default-secret-key-change-in-production"
	defaultTokenExpiry = 24 * time.Hour
	defaultCookieName  = "auth-token"
)

// Server HTTP 服务器
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	store  *Store
	redis  *cache.RedisCache

	authSvc      *service.AuthService
	adminSvc     *service.AdminService
	dictSvc      *service.DictionaryService
	translateSvc *service.TranslateService
	cookieName   string
}

// New 创建服务器实例
func New(cfg *config.Config) (*Server, error) {
	if cfg.Release() && cfg.Auth.JWTSecret == "" {
		return nil, errors.New("auth.jwt_secret is required in release mode")
	}

	// 设置 Gin 模式
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}

	// 初始化 Redis (可选)，不可用时搜索不走缓存
	var redisCache *cache.RedisCache
	var searchCache service.SearchCache
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedisCache(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without it")
		} else {
			redisCache = rc
			searchCache = cache.NewSearchCache(rc)
			log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")
		}
	}

	// 快照存储 (可选)
	snapshotStorage, err := storagefactory.NewStorage(&cfg.Storage)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize storage, snapshots disabled")
		snapshotStorage = nil
	}

	// AI 模型 (可选)
	var chatModel model.BaseChatModel
	cm, err := component.NewChatModel(context.Background(), &cfg.AI)
	switch {
	case err == nil:
		chatModel = cm
		log.Info().Str("provider", cfg.AI.Provider).Str("model", cfg.AI.Model).Msg("initialized chat model")
	case errors.Is(err, component.ErrNotConfigured):
		log.Warn().Msg("AI API key not configured, translation endpoints disabled")
	default:
		log.Warn().Err(err).Msg("failed to initialize chat model, translation endpoints disabled")
	}

	// 从配置读取JWT参数，如果没有配置则使用默认值
	jwtSecret := cfg.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret = defaultJWTSecret
		log.Warn().Str("mode", cfg.Server.Mode).Msg("JWT secret not configured, using development default")
	}
	tokenExpiry := cfg.Auth.TokenExpiry
	if tokenExpiry == 0 {
		tokenExpiry = defaultTokenExpiry
	}
	cookieName := cfg.Auth.CookieName
	if cookieName == "" {
		cookieName = defaultCookieName
	}

	srv := &Server{
		cfg:          cfg,
		engine:       gin.New(),
		store:        store,
		redis:        redisCache,
		authSvc:      service.NewAuthService(store.Admins, jwtSecret, tokenExpiry),
		adminSvc:     service.NewAdminService(store.Admins),
		dictSvc:      service.NewDictionaryService(store.Entries, searchCache, snapshotStorage),
		translateSvc: service.NewTranslateService(chatModel, cfg.AI.Timeout, cfg.Translate),
		cookieName:   cookieName,
	}

	srv.setupRoutes()

	return srv, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// 全局中间件
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger())
	s.engine.Use(middleware.CORS(s.cfg.Server.CORSOrigins))

	// 健康检查
	deps := map[string]handler.Pinger{"store": s.store}
	if s.redis != nil {
		deps["redis"] = s.redis
	}
	healthHandler := handler.NewHealthHandler(deps)
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/ready", healthHandler.Ready)

	// Swagger 文档
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 业务接口挂在根路径，同时在 /api 下提供一份
	s.registerAPI(s.engine)
	s.registerAPI(s.engine.Group("/api"))
}

// registerAPI 注册业务路由
func (s *Server) registerAPI(r gin.IRouter) {
	authHdl := authHandler.NewHandler(s.authSvc, authHandler.CookieOptions{
		Name:   s.cookieName,
		Secure: s.cfg.Release() || s.cfg.Auth.SecureCookie,
	})
	adminHdl := adminHandler.NewHandler(s.adminSvc)
	dictHdl := dictHandler.NewHandler(s.dictSvc)
	translateHdl := handler.NewTranslateHandler(s.translateSvc)

	requireSession := middleware.Auth(s.authSvc, s.cookieName)

	// 认证接口
	r.POST("/auth/login", authHdl.Login)
	r.POST("/auth/logout", authHdl.Logout)
	r.GET("/auth/verify", authHdl.Verify)

	// 词典查询公开，修改需要登录
	r.GET("/words", dictHdl.Search)
	words := r.Group("/words", requireSession)
	{
		words.POST("", dictHdl.Create)
		words.POST("/batch", dictHdl.BatchCreate)
		words.DELETE("/batch/delete", dictHdl.BatchDelete)
		words.PATCH("/status", dictHdl.UpdateStatus)
		words.GET("/export", dictHdl.Export)
		words.POST("/snapshots", dictHdl.Snapshot)
		words.PUT("/:id", dictHdl.Update)
		words.DELETE("/:id", dictHdl.Delete)
	}

	// 管理员管理（仅超级管理员）
	admins := r.Group("/admins", requireSession, middleware.RequireSuperAdmin())
	{
		admins.GET("", adminHdl.List)
		admins.POST("", adminHdl.Create)
		admins.PATCH("/:id", adminHdl.Update)
		admins.DELETE("/:id", adminHdl.Delete)
	}

	// AI 翻译建议
	ai := r.Group("/ai-translate", requireSession)
	{
		ai.POST("", translateHdl.Translate)
		ai.POST("/batch", translateHdl.BatchTranslate)
	}
}

// Run 启动服务器
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	// 启动服务器
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待关闭信号或错误
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		s.Close(shutdownCtx)
		return err
	case err := <-errCh:
		s.Close(context.Background())
		return err
	}
}

// Close 关闭存储与缓存连接
func (s *Server) Close(ctx context.Context) {
	if err := s.store.Close(ctx); err != nil {
		log.Error().Err(err).Msg("failed to close store")
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close Redis connection")
		}
	}
}

// Engine 获取 Gin 引擎 (用于测试)
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
