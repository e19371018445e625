package main

import (
	"caiu-perdeu/domain"
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/gookit/color"
)

// Console prints game messages to a terminal.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	colours bool
	nextID  int
}

func NewConsole(out io.Writer, colours bool) *Console {
	return &Console{out: out, colours: colours}
}

func (c *Console) Say(_ context.Context, _ string, content string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintln(c.out, c.paint(color.FgCyan, "> "+content))
	return err
}

func (c *Console) Send(_ context.Context, channelID string, message domain.Message) (domain.MessageHandle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	handle := domain.MessageHandle{ChannelID: channelID, MessageID: strconv.Itoa(c.nextID)}
	return handle, c.print("#"+handle.MessageID, message)
}

func (c *Console) Edit(_ context.Context, handle domain.MessageHandle, message domain.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.print("#"+handle.MessageID+" (edited)", message)
}

func (c *Console) print(label string, message domain.Message) error {
	header := fmt.Sprintf("  ====== %s %s ======", label, message.Title)
	if _, err := fmt.Fprintln(c.out, c.paint(color.FgYellow, header)); err != nil {
		return err
	}
	if message.Description != "" {
		if _, err := fmt.Fprintln(c.out, message.Description); err != nil {
			return err
		}
	}
	for _, field := range message.Fields {
		if _, err := fmt.Fprintf(c.out, "%s\n%s\n", c.paint(color.FgGreen, field.Name), field.Value); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) paint(fg color.Color, s string) string {
	if !c.colours {
		return s
	}
	return color.New(fg, color.OpBold).Render(s)
}
