package storagefactory

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"cidian/internal/config"
)

func TestNewStorage(t *testing.T) {
	Convey("根据配置创建存储", t, func() {
		Convey("未配置类型时不启用", func() {
			s, err := NewStorage(&config.StorageConfig{})
			So(err, ShouldBeNil)
			So(s, ShouldBeNil)
		})

		Convey("本地存储", func() {
			s, err := NewStorage(&config.StorageConfig{
				Type:  "local",
				Local: &config.LocalConfig{BasePath: t.TempDir(), BaseURL: "http://localhost/files"},
			})
			So(err, ShouldBeNil)
			So(s.GetStorageType(), ShouldEqual, "local")
		})

		Convey("缺少本地配置", func() {
			_, err := NewStorage(&config.StorageConfig{Type: "local"})
			So(err, ShouldNotBeNil)
		})

		Convey("缺少OSS配置", func() {
			_, err := NewStorage(&config.StorageConfig{Type: "oss"})
			So(err, ShouldNotBeNil)
		})

		Convey("不支持的类型", func() {
			_, err := NewStorage(&config.StorageConfig{Type: "s3"})
			So(err, ShouldNotBeNil)
		})
	})
}
