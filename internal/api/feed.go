package api

import "context"

// Posts fetches a page of the community feed, newest first.
func (c *Client) Posts(ctx context.Context) ([]Post, error) {
	var out []Post
	if err := c.get(ctx, "/api/community/posts/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ToggleLike flips the like state of a post for the requesting user.
// The server is the source of truth; the caller applies an optimistic
// local patch and reconciles on the next Posts fetch.
func (c *Client) ToggleLike(ctx context.Context, postID string) error {
	return c.post(ctx, "/api/community/posts/"+postID+"/like/", nil, nil)
}

// ToggleBookmark flips the bookmark state of a post.
func (c *Client) ToggleBookmark(ctx context.Context, postID string) error {
	return c.post(ctx, "/api/community/posts/"+postID+"/bookmark/", nil, nil)
}
