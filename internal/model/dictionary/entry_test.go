package dictionary

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFields(t *testing.T) {
	Convey("Fields.Normalize 去空白并小写英文", t, func() {
		f := Fields{Chinese: " 你好 ", English: " Hello ", Pinyin: "nǐ hǎo ", Phonetic: " neehow"}.Normalize()
		So(f, ShouldResemble, Fields{Chinese: "你好", English: "hello", Pinyin: "nǐ hǎo", Phonetic: "neehow"})
		So(f.Complete(), ShouldBeTrue)

		f.Pinyin = ""
		So(f.Complete(), ShouldBeFalse)

		blank := Fields{Chinese: "  ", English: "x", Pinyin: "x", Phonetic: "x"}.Normalize()
		So(blank.Complete(), ShouldBeFalse)
	})
}

func TestParseStatus(t *testing.T) {
	Convey("ParseStatus", t, func() {
		s, ok := ParseStatus("approved")
		So(ok, ShouldBeTrue)
		So(s, ShouldEqual, StatusApproved)

		_, ok = ParseStatus("PENDING")
		So(ok, ShouldBeFalse)
	})
}
