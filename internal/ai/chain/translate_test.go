package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	. "github.com/smartystreets/goconvey/convey"
)

type stubModel struct {
	reply string
	err   error
	last  []*schema.Message
}

func (m *stubModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.last = input
	if m.err != nil {
		return nil, m.err
	}
	return schema.AssistantMessage(m.reply, nil), nil
}

func (m *stubModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not supported")
}

func TestParseSuggestion(t *testing.T) {
	Convey("解析模型输出", t, func() {
		Convey("纯 JSON", func() {
			s, err := ParseSuggestion(`{"chinese":"你好","english":"Hello","pinyin":"nǐ hǎo","phonetic":"nee how"}`)
			So(err, ShouldBeNil)
			So(s.English, ShouldEqual, "hello")
			So(s.Chinese, ShouldEqual, "你好")
		})

		Convey("代码块与说明文字", func() {
			s, err := ParseSuggestion("Sure!\n```json\n{\"chinese\":\"谢谢\",\"english\":\"thanks\",\"pinyin\":\"xiè xie\",\"phonetic\":\"shyeh shyeh\"}\n```\nHope it helps.")
			So(err, ShouldBeNil)
			So(s.Pinyin, ShouldEqual, "xiè xie")
		})

		Convey("缺少字段", func() {
			_, err := ParseSuggestion(`{"chinese":"你好","english":"hello","pinyin":""}`)
			So(errors.Is(err, ErrIncompleteSuggestion), ShouldBeTrue)
		})

		Convey("无法解析", func() {
			_, err := ParseSuggestion("I don't know")
			So(errors.Is(err, ErrIncompleteSuggestion), ShouldBeTrue)
			_, err = ParseSuggestion("{not json}")
			So(errors.Is(err, ErrIncompleteSuggestion), ShouldBeTrue)
		})
	})
}

func TestTranslateChain(t *testing.T) {
	Convey("翻译建议链", t, func() {
		m := &stubModel{reply: `{"chinese":"苹果","english":"apple","pinyin":"píng guǒ","phonetic":"ping gwaw"}`}
		c := NewTranslateChain(m)

		s, err := c.Run(context.Background(), "apple", InputEnglish)
		So(err, ShouldBeNil)
		So(s.Chinese, ShouldEqual, "苹果")
		So(len(m.last), ShouldEqual, 2)
		So(m.last[0].Role, ShouldEqual, schema.System)
		So(m.last[1].Content, ShouldContainSubstring, "English input: apple")

		m.err = errors.New("provider down")
		_, err = c.Run(context.Background(), "apple", InputEnglish)
		So(err, ShouldNotBeNil)
	})
}
