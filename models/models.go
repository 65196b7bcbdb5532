package models

// All 需要迁移的表
func All() []any {
	return []any{
		&Users{},
		&Post{},
		&PostLike{},
		&Comment{},
		&UserFollow{},
	}
}
