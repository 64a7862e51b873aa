package dictionary

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"cidian/internal/model/dictionary"
	"cidian/internal/pkg/id"
	"cidian/internal/pkg/sqlite"
)

func newEntry(chinese, english, pinyin, phonetic string) *dictionary.Entry {
	return &dictionary.Entry{
		ID:       id.New(),
		Chinese:  chinese,
		English:  english,
		Pinyin:   pinyin,
		Phonetic: phonetic,
		Status:   dictionary.StatusNotReviewed,
	}
}

func TestSQLEntryRepo(t *testing.T) {
	Convey("SQLite 词条仓库", t, func() {
		client, err := sqlite.New("")
		So(err, ShouldBeNil)
		defer client.Close()

		ctx := context.Background()
		repo := NewSQLEntryRepo(client.DB())

		hello := newEntry("你好", "hello", "nǐ hǎo", "nee how")
		thanks := newEntry("谢谢", "thank you", "xiè xie", "shyeh shyeh")
		So(repo.Create(ctx, hello), ShouldBeNil)
		So(repo.Create(ctx, thanks), ShouldBeNil)
		So(hello.CreatedAt.IsZero(), ShouldBeFalse)

		Convey("按ID查询", func() {
			got, err := repo.FindByID(ctx, hello.ID)
			So(err, ShouldBeNil)
			So(got.Chinese, ShouldEqual, "你好")
			So(got.Status, ShouldEqual, dictionary.StatusNotReviewed)

			_, err = repo.FindByID(ctx, id.New())
			So(err, ShouldEqual, ErrNotFound)
		})

		Convey("重复中文或英文违反唯一约束", func() {
			err := repo.Create(ctx, newEntry("你好", "hi", "nǐ hǎo", "nee how"))
			So(err, ShouldEqual, ErrDuplicate)
			err = repo.Create(ctx, newEntry("嗨", "hello", "hāi", "high"))
			So(err, ShouldEqual, ErrDuplicate)
		})

		Convey("冲突查询排除自身", func() {
			got, err := repo.FindConflict(ctx, "你好", "other", "")
			So(err, ShouldBeNil)
			So(got.ID, ShouldEqual, hello.ID)

			got, err = repo.FindConflict(ctx, "你好", "hello", hello.ID)
			So(err, ShouldBeNil)
			So(got, ShouldBeNil)
		})

		Convey("前缀搜索大小写无关并保持插入顺序", func() {
			all, err := repo.Search(ctx, "")
			So(err, ShouldBeNil)
			So(len(all), ShouldEqual, 2)
			So(all[0].ID, ShouldEqual, hello.ID)

			got, err := repo.Search(ctx, "HEL")
			So(err, ShouldBeNil)
			So(len(got), ShouldEqual, 1)
			So(got[0].English, ShouldEqual, "hello")

			got, err = repo.Search(ctx, "xiè")
			So(err, ShouldBeNil)
			So(len(got), ShouldEqual, 1)
			So(got[0].ID, ShouldEqual, thanks.ID)

			got, err = repo.Search(ctx, "谢")
			So(err, ShouldBeNil)
			So(len(got), ShouldEqual, 1)

			got, err = repo.Search(ctx, "ello")
			So(err, ShouldBeNil)
			So(len(got), ShouldEqual, 0)

			got, err = repo.Search(ctx, "%")
			So(err, ShouldBeNil)
			So(len(got), ShouldEqual, 0)
		})

		Convey("更新与删除", func() {
			hello.English = "hi there"
			hello.Status = dictionary.StatusApproved
			So(repo.Update(ctx, hello), ShouldBeNil)

			got, err := repo.FindByID(ctx, hello.ID)
			So(err, ShouldBeNil)
			So(got.English, ShouldEqual, "hi there")
			So(got.Status, ShouldEqual, dictionary.StatusApproved)

			found, err := repo.Search(ctx, "HI T")
			So(err, ShouldBeNil)
			So(len(found), ShouldEqual, 1)

			hello.English = "thank you"
			So(repo.Update(ctx, hello), ShouldEqual, ErrDuplicate)

			So(repo.Delete(ctx, hello.ID), ShouldBeNil)
			So(repo.Delete(ctx, hello.ID), ShouldEqual, ErrNotFound)
		})

		Convey("批量更新状态与批量删除返回实际数量", func() {
			n, err := repo.UpdateStatusMany(ctx, []string{hello.ID, thanks.ID, id.New()}, dictionary.StatusRejected)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 2)

			got, _ := repo.FindByID(ctx, thanks.ID)
			So(got.Status, ShouldEqual, dictionary.StatusRejected)

			n, err = repo.DeleteMany(ctx, []string{hello.ID, id.New()})
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)

			n, err = repo.DeleteMany(ctx, nil)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 0)
		})
	})
}
