package jwt

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	. "github.com/smartystreets/goconvey/convey"
)

func TestJWT(t *testing.T) {
	Convey("JWT 签发与校验", t, func() {
		j := NewJWT("secret-a", 24*time.Hour)

		token, err := j.GenerateToken("admin-1", "admin", "SUPER_ADMIN")
		So(err, ShouldBeNil)
		So(token, ShouldNotBeEmpty)

		Convey("有效Token返回身份", func() {
			claims, err := j.ValidateToken(token)
			So(err, ShouldBeNil)
			So(claims.AdminID, ShouldEqual, "admin-1")
			So(claims.Username, ShouldEqual, "admin")
			So(claims.Role, ShouldEqual, "SUPER_ADMIN")
			So(claims.ExpiresAt.Sub(claims.IssuedAt.Time), ShouldEqual, 24*time.Hour)
		})

		Convey("其他密钥签发的Token无效", func() {
			other := NewJWT("secret-b", 24*time.Hour)
			_, err := other.ValidateToken(token)
			So(err, ShouldEqual, ErrInvalidToken)
		})

		Convey("篡改的Token无效", func() {
			parts := strings.Split(token, ".")
			So(len(parts), ShouldEqual, 3)
			tampered := parts[0] + "." + parts[1] + "x." + parts[2]
			_, err := j.ValidateToken(tampered)
			So(err, ShouldEqual, ErrInvalidToken)
		})

		Convey("过期Token与篡改Token返回相同错误", func() {
			j.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
			_, err := j.ValidateToken(token)
			So(err, ShouldEqual, ErrInvalidToken)
		})

		Convey("非HS256算法被拒绝", func() {
			claims := &Claims{AdminID: "admin-1", RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			}}
			other, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte("secret-a"))
			So(err, ShouldBeNil)
			_, err = j.ValidateToken(other)
			So(err, ShouldEqual, ErrInvalidToken)
		})

		Convey("垃圾字符串无效", func() {
			_, err := j.ValidateToken("not-a-token")
			So(err, ShouldEqual, ErrInvalidToken)
		})
	})
}
