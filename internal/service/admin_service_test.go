package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"cidian/internal/model/auth"
	"cidian/internal/pkg/ctxutil"
	"cidian/internal/pkg/id"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestAdminService(t *testing.T) {
	Convey("管理员管理", t, func() {
		ctx := context.Background()
		svc := NewAdminService(newTestAdminRepo(t))

		root, err := svc.Create(ctx, CreateAdminInput{
			Username: " Root ", Email: "ROOT@Example.com", Password: "secret", Role: "super_admin",
		})
		So(err, ShouldBeNil)
		So(root.Username, ShouldEqual, "root")
		So(root.Email, ShouldEqual, "root@example.com")
		So(root.Role, ShouldEqual, auth.RoleSuperAdmin)
		So(root.Password, ShouldStartWith, "$2a$12$")
		So(root.IsActive, ShouldBeTrue)

		caller := &ctxutil.Session{AdminID: root.ID, Username: root.Username, Role: string(root.Role)}

		editor, err := svc.Create(ctx, CreateAdminInput{Username: "editor", Email: "editor@example.com", Password: "secret"})
		So(err, ShouldBeNil)
		So(editor.Role, ShouldEqual, auth.RoleAdmin)

		Convey("创建校验", func() {
			_, err := svc.Create(ctx, CreateAdminInput{Username: "a", Email: "not-an-email", Password: "x"})
			var ve *ValidationError
			So(errors.As(err, &ve), ShouldBeTrue)

			_, err = svc.Create(ctx, CreateAdminInput{Username: "a", Email: "a@example.com"})
			So(errors.As(err, &ve), ShouldBeTrue)

			_, err = svc.Create(ctx, CreateAdminInput{Username: "a", Email: "a@example.com", Password: "x", Role: "OWNER"})
			So(errors.As(err, &ve), ShouldBeTrue)

			_, err = svc.Create(ctx, CreateAdminInput{Username: "EDITOR", Email: "other@example.com", Password: "x"})
			So(err, ShouldEqual, ErrAdminExists)

			_, err = svc.Create(ctx, CreateAdminInput{Username: "other", Email: "Editor@Example.com", Password: "x"})
			So(err, ShouldEqual, ErrAdminExists)
		})

		Convey("列表按创建时间倒序", func() {
			list, err := svc.List(ctx)
			So(err, ShouldBeNil)
			So(len(list), ShouldEqual, 2)
			So(list[0].ID, ShouldEqual, editor.ID)
		})

		Convey("不能停用自己，但可以停用他人", func() {
			_, err := svc.Update(ctx, caller, root.ID, UpdateAdminInput{IsActive: boolPtr(false)})
			So(err, ShouldEqual, ErrSelfDeactivate)

			updated, err := svc.Update(ctx, caller, editor.ID, UpdateAdminInput{IsActive: boolPtr(false)})
			So(err, ShouldBeNil)
			So(updated.IsActive, ShouldBeFalse)
		})

		Convey("修改角色", func() {
			updated, err := svc.Update(ctx, caller, editor.ID, UpdateAdminInput{Role: strPtr("moderator")})
			So(err, ShouldBeNil)
			So(updated.Role, ShouldEqual, auth.RoleModerator)

			_, err = svc.Update(ctx, caller, editor.ID, UpdateAdminInput{Role: strPtr("boss")})
			var ve *ValidationError
			So(errors.As(err, &ve), ShouldBeTrue)
		})

		Convey("ID 非法或不存在", func() {
			_, err := svc.Update(ctx, caller, "7", UpdateAdminInput{IsActive: boolPtr(true)})
			var ve *ValidationError
			So(errors.As(err, &ve), ShouldBeTrue)

			_, err = svc.Update(ctx, caller, id.New(), UpdateAdminInput{IsActive: boolPtr(true)})
			So(err, ShouldEqual, ErrAdminNotFound)

			So(svc.Delete(ctx, caller, id.New()), ShouldEqual, ErrAdminNotFound)
		})

		Convey("不能删除自己", func() {
			So(svc.Delete(ctx, caller, root.ID), ShouldEqual, ErrSelfDelete)
			So(svc.Delete(ctx, caller, strings.ToUpper(root.ID)), ShouldEqual, ErrSelfDelete)

			_, err := svc.Update(ctx, caller, "{"+strings.ToUpper(root.ID)+"}", UpdateAdminInput{IsActive: boolPtr(false)})
			So(err, ShouldEqual, ErrSelfDeactivate)

			So(svc.Delete(ctx, caller, editor.ID), ShouldBeNil)
			list, _ := svc.List(ctx)
			So(len(list), ShouldEqual, 1)
		})

		Convey("保留最后一个启用的超级管理员", func() {
			other := &ctxutil.Session{AdminID: editor.ID, Username: "editor", Role: "SUPER_ADMIN"}

			_, err := svc.Update(ctx, other, root.ID, UpdateAdminInput{IsActive: boolPtr(false)})
			So(err, ShouldEqual, ErrLastSuperAdmin)
			_, err = svc.Update(ctx, other, root.ID, UpdateAdminInput{Role: strPtr("ADMIN")})
			So(err, ShouldEqual, ErrLastSuperAdmin)
			So(svc.Delete(ctx, other, root.ID), ShouldEqual, ErrLastSuperAdmin)

			_, err = svc.Update(ctx, caller, editor.ID, UpdateAdminInput{Role: strPtr("SUPER_ADMIN")})
			So(err, ShouldBeNil)
			_, err = svc.Update(ctx, other, root.ID, UpdateAdminInput{IsActive: boolPtr(false)})
			So(err, ShouldBeNil)
		})

		Convey("初始化超级管理员", func() {
			_, err := svc.Update(ctx, caller, editor.ID, UpdateAdminInput{IsActive: boolPtr(false)})
			So(err, ShouldBeNil)

			a, created, err := svc.EnsureSuperAdmin(ctx, CreateAdminInput{Username: "Editor", Email: "editor@example.com", Password: "other"})
			So(err, ShouldBeNil)
			So(created, ShouldBeFalse)
			So(a.ID, ShouldEqual, editor.ID)
			So(a.IsActive, ShouldBeTrue)
			So(a.Role, ShouldEqual, auth.RoleSuperAdmin)
			So(a.Password, ShouldEqual, editor.Password)

			a, created, err = svc.EnsureSuperAdmin(ctx, CreateAdminInput{Username: "boot", Email: "boot@example.com", Password: "admin123"})
			So(err, ShouldBeNil)
			So(created, ShouldBeTrue)
			So(a.Role, ShouldEqual, auth.RoleSuperAdmin)
		})
	})
}
