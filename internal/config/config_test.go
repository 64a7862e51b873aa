package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080, Mode: "release"},
		Store:  StoreConfig{Driver: "sqlite"},
		Auth:   AuthConfig{JWTSecret: "prod-secret"},
	}
}

func TestConfig_Validate(t *testing.T) {
	Convey("Config.Validate", t, func() {
		Convey("默认 sqlite 配置有效", func() {
			So(validConfig().Validate(), ShouldBeNil)
		})

		Convey("端口越界无效", func() {
			cfg := validConfig()
			cfg.Server.Port = 70000
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("未知运行模式无效", func() {
			cfg := validConfig()
			cfg.Server.Mode = "prod"
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("mongo 驱动需要 URI", func() {
			cfg := validConfig()
			cfg.Store.Driver = "mongo"
			So(cfg.Validate(), ShouldNotBeNil)

			cfg.Mongo.URI = "mongodb://localhost:27017"
			So(cfg.Validate(), ShouldBeNil)
		})

		Convey("未知存储驱动无效", func() {
			cfg := validConfig()
			cfg.Store.Driver = "postgres"
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("负数批次大小无效", func() {
			cfg := validConfig()
			cfg.Translate.ChunkSize = -1
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("release 模式必须配置 JWT 密钥", func() {
			cfg := validConfig()
			cfg.Auth.JWTSecret = ""
			So(cfg.Validate(), ShouldNotBeNil)
			So(cfg.Validate().Error(), ShouldContainSubstring, "auth.jwt_secret")

			cfg.Server.Mode = "debug"
			So(cfg.Validate(), ShouldBeNil)
			cfg.Server.Mode = "test"
			So(cfg.Validate(), ShouldBeNil)
		})

		Convey("release 模式", func() {
			cfg := validConfig()
			So(cfg.Release(), ShouldBeTrue)
			cfg.Server.Mode = "debug"
			So(cfg.Release(), ShouldBeFalse)
		})
	})
}
