package ctxutil

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSession(t *testing.T) {
	Convey("会话注入与读取", t, func() {
		_, ok := GetSession(context.Background())
		So(ok, ShouldBeFalse)

		ctx := WithSession(context.Background(), &Session{AdminID: "a1", Username: "admin", Role: "ADMIN"})
		s, ok := GetSession(ctx)
		So(ok, ShouldBeTrue)
		So(s.Username, ShouldEqual, "admin")

		_, ok = GetSession(WithSession(context.Background(), &Session{}))
		So(ok, ShouldBeFalse)
	})
}
