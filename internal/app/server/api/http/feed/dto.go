package feed

import "pocketapp/internal/domain/feed"

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Items []feed.Item `json:"items"`
}

type likeInput struct {
	ID string `path:"id" minLength:"1" doc:"Идентификатор поста"`
}

type likeOutput struct {
	Body feed.Item
}
