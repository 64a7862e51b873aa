package password

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHashAndVerify(t *testing.T) {
	Convey("bcrypt 哈希与校验", t, func() {
		hash, err := Hash("admin123")
		So(err, ShouldBeNil)
		So(hash, ShouldNotEqual, "admin123")
		So(hash, ShouldStartWith, "$2a$12$")

		So(Verify("admin123", hash), ShouldBeTrue)
		So(Verify("admin124", hash), ShouldBeFalse)
		So(Verify("admin123", "not-a-hash"), ShouldBeFalse)
		So(Verify("", hash), ShouldBeFalse)
	})

	Convey("拒绝空密码和超长密码", t, func() {
		_, err := Hash("")
		So(err, ShouldEqual, ErrEmpty)

		_, err = Hash(strings.Repeat("a", MaxLength+1))
		So(err, ShouldEqual, ErrTooLong)
	})
}
