package model

// Account represents the database model for a points account.
// The table keeps the name "users" so existing bot databases open unchanged.
type Account struct {
	DiscordID int64 `gorm:"column:discord_id;primaryKey;autoIncrement:false"`
	Points    int64 `gorm:"column:points;default:0"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "users"
}
