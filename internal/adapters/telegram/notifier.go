// Package telegram pushes booking and announcement notifications to the hall
// office Telegram channel.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"hallbooking/internal/calendardate"
	"hallbooking/internal/domain"
	"hallbooking/internal/timeslot"
)

type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *slog.Logger
}

// NewNotifier creates a Telegram notifier posting to the given chat. An empty
// token disables sending; the notifier then only logs, so local development
// works without a bot.
func NewNotifier(token string, chatID int64, logger *slog.Logger) (*Notifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &Notifier{bot: nil, chatID: chatID, logger: logger}, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *Notifier) NotifyBookingRequested(ctx context.Context, booking *domain.Booking, venue *domain.Venue) {
	text := fmt.Sprintf(
		"*New booking request*\n\nVenue: %s\nDate: %s\nTime: %s\nPurpose: %s",
		venue.Name, formatDate(booking.Date), formatSlots(booking.Slots), booking.Purpose,
	)
	n.send(ctx, text)
}

func (n *Notifier) NotifyBookingDecision(ctx context.Context, booking *domain.Booking, venue *domain.Venue, user *domain.User) {
	verdict := "approved"
	if booking.Status == domain.BookingStatusRejected {
		verdict = "rejected"
	}
	text := fmt.Sprintf(
		"*Booking %s*\n\nVenue: %s\nDate: %s\nTime: %s\nRequested by: %s",
		verdict, venue.Name, formatDate(booking.Date), formatSlots(booking.Slots), user.Name,
	)
	n.send(ctx, text)
}

func (n *Notifier) NotifyAnnouncement(ctx context.Context, a *domain.Announcement) {
	text := fmt.Sprintf("*%s*\n\n%s", a.Title, a.Body)
	n.send(ctx, text)
}

func (n *Notifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("telegram notification skipped (bot disabled)", "text", text)
		return
	}
	if err := ctx.Err(); err != nil {
		n.logger.Debug("telegram notification skipped (context cancelled)")
		return
	}
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification", "chat_id", n.chatID, "err", err)
	}
}

func formatDate(ts int64) string {
	d, ok := calendardate.FromUnixDay(ts)
	if !ok {
		return fmt.Sprintf("ts:%d", ts)
	}
	return d.Format(calendardate.Layout)
}

// formatSlots renders a slot-set as its covering clock range, e.g. "0900 - 1130".
func formatSlots(slots string) string {
	indices := timeslot.ParseSet(slots)
	if len(indices) == 0 {
		return slots
	}
	min, max := indices[0], indices[0]
	for _, s := range indices[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	first, ok1 := timeslot.SlotToClock(min)
	last, ok2 := timeslot.SlotToClock(max)
	if !ok1 || !ok2 {
		return slots
	}
	return first.Start + " - " + last.End
}

var (
	_ domain.BookingNotifier      = (*Notifier)(nil)
	_ domain.AnnouncementNotifier = (*Notifier)(nil)
)
