package feed

const defaultAvatar = "assets/images/avatar.png"

var seed = []Post{
	{
		ID:       "1",
		Author:   "Radha Agarwal",
		Avatar:   defaultAvatar,
		Title:    "Welcome to our new product feed",
		Summary:  "Simple, minimal and focused — learn how to make the most of your profile and posts. This short summary helps users decide what to read.",
		Image:    "https://picsum.photos/id/1015/900/600",
		Time:     "2h",
		Likes:    24,
		Comments: 5,
		Shares:   2,
	},
	{
		ID:       "2",
		Author:   "Product Team",
		Avatar:   defaultAvatar,
		Title:    "Performance update released",
		Summary:  "We improved scrolling performance and reduced initial load time. Expect smoother transitions on low-end devices.",
		Image:    "https://picsum.photos/id/1011/900/600",
		Time:     "4h",
		Likes:    48,
		Comments: 12,
		Shares:   6,
	},
	{
		ID:       "3",
		Author:   "Design Insights",
		Avatar:   defaultAvatar,
		Title:    "Design patterns for feed screens",
		Summary:  "Minimal visual noise and consistent card sizing make it easier for users to scan content quickly — here's a short guide.",
		Image:    "https://picsum.photos/id/1025/900/600",
		Time:     "1d",
		Likes:    120,
		Comments: 34,
		Shares:   18,
	},
	{
		ID:       "4",
		Author:   "Newsroom",
		Avatar:   defaultAvatar,
		Title:    "Scheduled maintenance notice",
		Summary:  "Maintenance will be performed this Sunday between 2:00–3:00 AM. Services may be intermittently unavailable.",
		Image:    "https://picsum.photos/id/103/900/600",
		Time:     "3d",
		Likes:    8,
		Comments: 2,
		Shares:   1,
	},
	{
		ID:       "5",
		Author:   "Team Updates",
		Avatar:   defaultAvatar,
		Title:    "How to customize your profile",
		Summary:  "Add a photo, social links, and a short bio to stand out. We provide templates to make setup fast and easy.",
		Image:    "https://picsum.photos/id/1043/900/600",
		Time:     "1w",
		Likes:    67,
		Comments: 9,
		Shares:   5,
	},
}

// Seed возвращает свежую копию статических постов.
func Seed() []Post {
	posts := make([]Post, len(seed))
	copy(posts, seed)
	return posts
}
