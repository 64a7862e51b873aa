package oss

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClampExpiry(t *testing.T) {
	Convey("预签名过期时间不超过配置值", t, func() {
		So(clampExpiry(2*time.Hour, 3600), ShouldEqual, time.Hour)
		So(clampExpiry(10*time.Minute, 3600), ShouldEqual, 10*time.Minute)
		So(clampExpiry(2*time.Hour, 0), ShouldEqual, 2*time.Hour)
	})
}
