// Package domain contains core concepts of the elimination game.
// This file defines the messages shown to players.
package domain

// Message is a rendered announcement, independent of the chat platform.
type Message struct {
	Title       string
	Description string
	Author      string
	AuthorIcon  string
	Fields      []MessageField
}

type MessageField struct {
	Name  string
	Value string
}

// MessageHandle points to a message already published, so it can be edited in place.
type MessageHandle struct {
	ChannelID string
	MessageID string
}
