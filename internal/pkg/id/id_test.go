package id

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCanonical(t *testing.T) {
	Convey("Canonical 统一为小写标准形式", t, func() {
		a := New()

		got, ok := Canonical(a)
		So(ok, ShouldBeTrue)
		So(got, ShouldEqual, a)

		for _, form := range []string{strings.ToUpper(a), "{" + a + "}", "urn:uuid:" + a, "  " + a + "\t"} {
			got, ok := Canonical(form)
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, a)
		}

		_, ok = Canonical("42")
		So(ok, ShouldBeFalse)
		_, ok = Canonical("")
		So(ok, ShouldBeFalse)
	})
}

func TestFilter(t *testing.T) {
	Convey("Filter 丢弃非法ID", t, func() {
		a, b := New(), New()

		got := Filter([]string{" " + a + " ", "", "   ", "42", b, a})
		So(got, ShouldResemble, []string{a, b})

		So(Filter(nil), ShouldBeEmpty)

		Convey("不同写法的同一ID只保留一次", func() {
			got := Filter([]string{strings.ToUpper(a), a, "{" + b + "}", "urn:uuid:" + b})
			So(got, ShouldResemble, []string{a, b})
		})
	})
}
