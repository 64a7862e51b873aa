package component

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"cidian/internal/config"
)

func TestNewChatModel(t *testing.T) {
	Convey("创建 ChatModel", t, func() {
		Convey("未配置 API Key", func() {
			_, err := NewChatModel(context.Background(), &config.AIConfig{Provider: "openai"})
			So(err, ShouldEqual, ErrNotConfigured)
		})

		Convey("不支持的 Provider", func() {
			_, err := NewChatModel(context.Background(), &config.AIConfig{Provider: "foo", APIKey: "k"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unsupported AI provider")
		})

		Convey("采样参数零值不下发", func() {
			temp, topP, maxTokens := sampling(config.AIOptionsConfig{Temperature: 0.3})
			So(*temp, ShouldAlmostEqual, 0.3, 0.0001)
			So(topP, ShouldBeNil)
			So(maxTokens, ShouldBeNil)
		})
	})
}
