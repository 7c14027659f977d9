package feed

// Post - карточка ленты. Счетчики не меняются, лайк пользователя хранится отдельно.
type Post struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Avatar   string `json:"avatar"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Image    string `json:"image"`
	Time     string `json:"time"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Shares   int    `json:"shares"`
}

// Item - пост в том виде, в котором он показывается пользователю.
type Item struct {
	Post
	Liked        bool `json:"liked"`
	DisplayLikes int  `json:"display_likes"`
}

func newItem(p Post, liked bool) Item {
	likes := p.Likes
	if liked {
		likes++
	}
	return Item{
		Post:         p,
		Liked:        liked,
		DisplayLikes: likes,
	}
}
