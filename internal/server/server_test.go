package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"cidian/internal/config"
	httpresp "cidian/internal/pkg/http"
	"cidian/internal/service"
)

const (
	testPassword = "supersecretpassword"
	testCookie   = "auth-token"
)

// newTestServer 使用内存 SQLite 和本地快照目录创建服务器，并初始化一个超级管理员
func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		Store:  config.StoreConfig{Driver: "sqlite"},
		Auth:   config.AuthConfig{JWTSecret: "test-secret"},
		Storage: config.StorageConfig{
			Type:  "local",
			Local: &config.LocalConfig{BasePath: t.TempDir(), BaseURL: "http://localhost:8080/files"},
		},
	}
	srv, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { srv.Close(context.Background()) })

	_, _, err = service.NewAdminService(srv.store.Admins).EnsureSuperAdmin(context.Background(), service.CreateAdminInput{
		Username: "root", Email: "root@example.com", Password: testPassword,
	})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return srv
}

type envelope struct {
	httpresp.Response
	Data json.RawMessage `json:"data"`
}

func do(srv *Server, method, path string, body any, cookie *http.Cookie) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rr, req)

	var env envelope
	_ = json.Unmarshal(rr.Body.Bytes(), &env)
	return rr, env
}

func login(srv *Server, username, password string) *http.Cookie {
	rr, _ := do(srv, http.MethodPost, "/auth/login", map[string]string{"username": username, "password": password}, nil)
	for _, c := range rr.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}

func word(chinese, english, pinyin, phonetic string) map[string]string {
	return map[string]string{"chinese": chinese, "english": english, "pinyin": pinyin, "phonetic": phonetic}
}

func TestAuthFlow(t *testing.T) {
	Convey("登录与会话校验", t, func() {
		srv := newTestServer(t)

		Convey("密码错误返回401", func() {
			rr, env := do(srv, http.MethodPost, "/auth/login", map[string]string{"username": "root", "password": "wrong"}, nil)
			So(rr.Code, ShouldEqual, http.StatusUnauthorized)
			So(env.Success, ShouldBeFalse)
		})

		Convey("缺少字段返回400", func() {
			rr, _ := do(srv, http.MethodPost, "/auth/login", map[string]string{"username": "root"}, nil)
			So(rr.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("登录成功写入 HttpOnly Cookie", func() {
			rr, env := do(srv, http.MethodPost, "/auth/login", map[string]string{"username": "ROOT@example.com", "password": testPassword}, nil)
			So(rr.Code, ShouldEqual, http.StatusOK)
			So(env.Success, ShouldBeTrue)

			var cookie *http.Cookie
			for _, c := range rr.Result().Cookies() {
				if c.Name == testCookie {
					cookie = c
				}
			}
			So(cookie, ShouldNotBeNil)
			So(cookie.HttpOnly, ShouldBeTrue)
			So(cookie.SameSite, ShouldEqual, http.SameSiteStrictMode)
			So(cookie.MaxAge, ShouldEqual, 24*60*60)

			rr, env = do(srv, http.MethodGet, "/auth/verify", nil, cookie)
			So(rr.Code, ShouldEqual, http.StatusOK)
			var who map[string]string
			So(json.Unmarshal(env.Data, &who), ShouldBeNil)
			So(who["username"], ShouldEqual, "root")
			So(who["role"], ShouldEqual, "SUPER_ADMIN")
		})

		Convey("未携带Cookie校验失败", func() {
			rr, env := do(srv, http.MethodGet, "/auth/verify", nil, nil)
			So(rr.Code, ShouldEqual, http.StatusUnauthorized)
			So(env.Error, ShouldEqual, httpresp.KindAuthenticationRequired)
		})

		Convey("退出登录清除Cookie", func() {
			rr, _ := do(srv, http.MethodPost, "/auth/logout", nil, nil)
			So(rr.Code, ShouldEqual, http.StatusOK)
			So(rr.Header().Get("Set-Cookie"), ShouldContainSubstring, "Max-Age=0")
		})
	})
}

func TestDictionaryRoutes(t *testing.T) {
	Convey("词典接口", t, func() {
		srv := newTestServer(t)
		cookie := login(srv, "root", testPassword)
		So(cookie, ShouldNotBeNil)

		Convey("修改需要登录", func() {
			rr, _ := do(srv, http.MethodPost, "/words", word("你好", "hello", "nǐ hǎo", "nee how"), nil)
			So(rr.Code, ShouldEqual, http.StatusUnauthorized)
		})

		Convey("创建、重复冲突与搜索", func() {
			rr, env := do(srv, http.MethodPost, "/words", word("你好", "Hello", "nǐ hǎo", "nee how"), cookie)
			So(rr.Code, ShouldEqual, http.StatusCreated)
			So(env.Message, ShouldEqual, "Dictionary entry created successfully")

			rr, env = do(srv, http.MethodPost, "/words", word("您好", "hello", "nín hǎo", "neen how"), cookie)
			So(rr.Code, ShouldEqual, http.StatusConflict)
			So(env.Error, ShouldEqual, httpresp.KindConflict)
			So(string(env.Data), ShouldContainSubstring, "existingEntry")

			rr, env = do(srv, http.MethodGet, "/words?q=HEL", nil, nil)
			So(rr.Code, ShouldEqual, http.StatusOK)
			So(*env.Count, ShouldEqual, 1)

			rr, env = do(srv, http.MethodGet, "/api/words?q=nee", nil, nil)
			So(rr.Code, ShouldEqual, http.StatusOK)
			So(*env.Count, ShouldEqual, 1)
		})

		Convey("批量创建部分失败", func() {
			rr, env := do(srv, http.MethodPost, "/api/words/batch", map[string]any{
				"entries": []map[string]string{
					word("谢谢", "thanks", "xiè xie", "shieh shieh"),
					{"chinese": "再见"},
				},
			}, cookie)
			So(rr.Code, ShouldEqual, http.StatusCreated)
			So(env.Message, ShouldEqual, "Batch operation completed: 1 created, 1 failed")

			var result service.BatchCreateResult
			So(json.Unmarshal(env.Data, &result), ShouldBeNil)
			So(result.Summary.Total, ShouldEqual, 2)
			So(result.Errors[0].Index, ShouldEqual, 1)
		})

		Convey("批量状态、导出与快照", func() {
			_, env := do(srv, http.MethodPost, "/words", word("谢谢", "thanks", "xiè xie", "shieh shieh"), cookie)
			var created struct {
				ID string `json:"id"`
			}
			So(json.Unmarshal(env.Data, &created), ShouldBeNil)

			rr, env := do(srv, http.MethodPatch, "/words/status", map[string]any{"ids": []string{created.ID}, "status": "approved"}, cookie)
			So(rr.Code, ShouldEqual, http.StatusOK)
			So(env.Message, ShouldEqual, "Successfully updated 1 entries to APPROVED")

			rr, _ = do(srv, http.MethodGet, "/words/export", nil, cookie)
			So(rr.Code, ShouldEqual, http.StatusOK)
			So(rr.Header().Get("Content-Type"), ShouldStartWith, "text/csv")
			So(rr.Header().Get("Content-Disposition"), ShouldContainSubstring, "attachment")
			So(strings.Count(rr.Body.String(), "\n"), ShouldEqual, 2)

			rr, env = do(srv, http.MethodPost, "/words/snapshots", nil, cookie)
			So(rr.Code, ShouldEqual, http.StatusCreated)
			var snap service.SnapshotResult
			So(json.Unmarshal(env.Data, &snap), ShouldBeNil)
			So(snap.Count, ShouldEqual, 1)
			So(snap.Storage, ShouldEqual, "local")

			rr, env = do(srv, http.MethodDelete, "/words/batch/delete", map[string]any{"ids": []string{created.ID, "not-an-id"}}, cookie)
			So(rr.Code, ShouldEqual, http.StatusOK)
			So(env.Message, ShouldEqual, "Successfully deleted 1 dictionary entries")
		})

		Convey("未配置 AI 时翻译返回503", func() {
			rr, env := do(srv, http.MethodPost, "/ai-translate", map[string]string{"input": "你好", "type": "chinese"}, cookie)
			So(rr.Code, ShouldEqual, http.StatusServiceUnavailable)
			So(env.Error, ShouldEqual, httpresp.KindServiceUnavailable)
		})
	})
}

func TestAdminRoutes(t *testing.T) {
	Convey("管理员接口", t, func() {
		srv := newTestServer(t)
		rootCookie := login(srv, "root", testPassword)
		So(rootCookie, ShouldNotBeNil)

		rr, env := do(srv, http.MethodPost, "/admins", map[string]string{
			"username": "editor", "email": "editor@example.com", "password": "editorpass", "role": "ADMIN",
		}, rootCookie)
		So(rr.Code, ShouldEqual, http.StatusCreated)
		So(string(env.Data), ShouldNotContainSubstring, "password")

		Convey("普通管理员不能访问管理员接口但能修改词典", func() {
			editorCookie := login(srv, "editor", "editorpass")
			So(editorCookie, ShouldNotBeNil)

			rr, env := do(srv, http.MethodGet, "/admins", nil, editorCookie)
			So(rr.Code, ShouldEqual, http.StatusForbidden)
			So(env.Error, ShouldEqual, httpresp.KindAuthorizationDenied)

			rr, _ = do(srv, http.MethodPost, "/words", word("你好", "hello", "nǐ hǎo", "nee how"), editorCookie)
			So(rr.Code, ShouldEqual, http.StatusCreated)
		})

		Convey("列表带数量", func() {
			rr, env := do(srv, http.MethodGet, "/api/admins", nil, rootCookie)
			So(rr.Code, ShouldEqual, http.StatusOK)
			So(*env.Count, ShouldEqual, 2)
		})

		Convey("不能停用自己", func() {
			_, env := do(srv, http.MethodGet, "/auth/verify", nil, rootCookie)
			var who map[string]string
			So(json.Unmarshal(env.Data, &who), ShouldBeNil)

			rr, env := do(srv, http.MethodPatch, "/admins/"+who["id"], map[string]bool{"isActive": false}, rootCookie)
			So(rr.Code, ShouldEqual, http.StatusBadRequest)
			So(env.Error, ShouldEqual, httpresp.KindValidationFailed)

			rr, _ = do(srv, http.MethodDelete, "/admins/"+who["id"], nil, rootCookie)
			So(rr.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("重复用户名返回409", func() {
			rr, _ := do(srv, http.MethodPost, "/admins", map[string]string{
				"username": "Editor", "email": "other@example.com", "password": "x",
			}, rootCookie)
			So(rr.Code, ShouldEqual, http.StatusConflict)
		})
	})
}

func TestNewRequiresSecretInRelease(t *testing.T) {
	Convey("release 模式未配置 JWT 密钥时拒绝启动", t, func() {
		cfg := &config.Config{
			Server: config.ServerConfig{Mode: "release"},
			Store:  config.StoreConfig{Driver: "sqlite"},
		}
		srv, err := New(cfg)
		So(err, ShouldNotBeNil)
		So(srv, ShouldBeNil)
		So(err.Error(), ShouldContainSubstring, "auth.jwt_secret")
	})
}
