package model

import "time"

// Folder : папка пользователя в дереве каталогов.
// Path — материализованный путь от корня, например "/Проекты/2024".
// Инвариант: Path всегда равен parent.Path + "/" + Name (или "/" + Name для корня).
type Folder struct {
	UUID       string    `db:"uuid" json:"uuid"`
	OwnerUUID  string    `db:"owner_uuid" json:"owner_uuid"`
	ParentUUID *string   `db:"parent_uuid" json:"parent_uuid,omitempty"`
	Name       string    `db:"name" json:"name"`
	Path       string    `db:"path" json:"path"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// IsRoot : true, если папка лежит в корне дерева владельца
func (f *Folder) IsRoot() bool {
	return f.ParentUUID == nil
}
