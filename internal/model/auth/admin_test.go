package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseRole(t *testing.T) {
	Convey("ParseRole 统一角色大小写", t, func() {
		for _, in := range []string{"super_admin", "SUPER_ADMIN", "Super-Admin", " super admin "} {
			r, ok := ParseRole(in)
			So(ok, ShouldBeTrue)
			So(r, ShouldEqual, RoleSuperAdmin)
		}

		r, ok := ParseRole("moderator")
		So(ok, ShouldBeTrue)
		So(r, ShouldEqual, RoleModerator)

		_, ok = ParseRole("root")
		So(ok, ShouldBeFalse)
		_, ok = ParseRole("")
		So(ok, ShouldBeFalse)

		So(IsSuperAdmin("super_admin"), ShouldBeTrue)
		So(IsSuperAdmin("ADMIN"), ShouldBeFalse)
	})
}

func TestValidEmail(t *testing.T) {
	Convey("ValidEmail", t, func() {
		So(ValidEmail("admin@example.com"), ShouldBeTrue)
		So(ValidEmail("a.b+c@sub.example.org"), ShouldBeTrue)
		So(ValidEmail("admin@example"), ShouldBeFalse)
		So(ValidEmail("admin example.com"), ShouldBeFalse)
		So(ValidEmail("@example.com"), ShouldBeFalse)
		So(NormalizeIdentity("  Admin@Example.COM "), ShouldEqual, "admin@example.com")
	})
}
