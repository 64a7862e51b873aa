package service

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"cidian/internal/pkg/jwt"
)

func TestAuthService(t *testing.T) {
	Convey("登录认证", t, func() {
		ctx := context.Background()
		repo := newTestAdminRepo(t)
		admins := NewAdminService(repo)
		svc := NewAuthService(repo, "test-secret", 24*time.Hour)

		admin, err := admins.Create(ctx, CreateAdminInput{
			Username: "admin", Email: "admin@example.com", Password: "admin123", Role: "SUPER_ADMIN",
		})
		So(err, ShouldBeNil)

		Convey("用户名或邮箱登录成功", func() {
			result, err := svc.Authenticate(ctx, "Admin", "admin123")
			So(err, ShouldBeNil)
			So(result.Admin.ID, ShouldEqual, admin.ID)
			So(result.ExpiresIn, ShouldEqual, 24*time.Hour)

			claims, err := svc.Verify(result.Token)
			So(err, ShouldBeNil)
			So(claims.AdminID, ShouldEqual, admin.ID)
			So(claims.Role, ShouldEqual, "SUPER_ADMIN")

			_, err = svc.Authenticate(ctx, "ADMIN@example.com", "admin123")
			So(err, ShouldBeNil)

			stored, err := repo.FindByID(ctx, admin.ID)
			So(err, ShouldBeNil)
			So(stored.LastLoginAt, ShouldNotBeNil)
		})

		Convey("密码错误与用户不存在返回相同错误", func() {
			_, err := svc.Authenticate(ctx, "admin", "wrong")
			So(err, ShouldEqual, ErrInvalidCredentials)
			_, err = svc.Authenticate(ctx, "nobody", "admin123")
			So(err, ShouldEqual, ErrInvalidCredentials)
		})

		Convey("停用的管理员不能登录", func() {
			other, err := admins.Create(ctx, CreateAdminInput{Username: "bob", Email: "bob@example.com", Password: "pw"})
			So(err, ShouldBeNil)
			inactive := false
			_, err = admins.Update(ctx, nil, other.ID, UpdateAdminInput{IsActive: &inactive})
			So(err, ShouldBeNil)

			_, err = svc.Authenticate(ctx, "bob", "pw")
			So(err, ShouldEqual, ErrInvalidCredentials)
		})

		Convey("缺少参数", func() {
			_, err := svc.Authenticate(ctx, " ", "x")
			var ve *ValidationError
			So(errors.As(err, &ve), ShouldBeTrue)
		})

		Convey("无效Token", func() {
			_, err := svc.Verify("garbage")
			So(err, ShouldEqual, jwt.ErrInvalidToken)
		})
	})
}
