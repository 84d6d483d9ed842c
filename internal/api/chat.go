package api

import "context"

// Conversations lists the user's direct and group threads.
func (c *Client) Conversations(ctx context.Context) ([]Conversation, error) {
	var out []Conversation
	if err := c.get(ctx, "/api/chat/conversations/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MessageHistory fetches the initial page of messages for a thread,
// newest first. Live messages arrive separately over the socket.
func (c *Client) MessageHistory(ctx context.Context, conv Conversation) ([]Message, error) {
	path := "/api/chat/conversations/" + conv.ID + "/messages/"
	if conv.IsGroup {
		path = "/api/chat/groups/" + conv.ID + "/messages/"
	}
	var out []Message
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}
