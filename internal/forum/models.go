package forum

// Reply is a subdocument of Post. Replies are append-only and carry a
// server-assigned timestamp.
type Reply struct {
	Message   string `json:"message"`
	CreatedAt int64  `json:"createdAt"`
}

// Post is an anonymous discussion thread.
type Post struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	AnonymousID string  `json:"anonymousId"`
	Replies     []Reply `json:"replies"`
	CreatedAt   int64   `json:"createdAt"`
}
