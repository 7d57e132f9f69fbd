package models

// Tweet is one labelled post of the dataset.
// SwremoveText, Hashtag and Mention hold list literals such as "['a', 'b']"
// exactly as they appear in the dataset CSV.
type Tweet struct {
	Id           uint32   `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	Username     string   `gorm:"column:username;not null;index" json:"username"`
	FullText     string   `gorm:"column:fullText;type:text;not null" json:"full_text"`
	Sentimen     Sentimen `gorm:"column:sentimen;not null;index" json:"sentimen"`
	SwremoveText string   `gorm:"column:swremoveText;type:text" json:"swremove_text"`
	Hashtag      string   `gorm:"column:hashtag;type:text" json:"hashtag"`
	Mention      string   `gorm:"column:mention;type:text" json:"mention"`
	CreatedAt    string   `gorm:"column:createdAt;not null" json:"created_at"`
}

func (Tweet) TableName() string {
	return "Tweets"
}
