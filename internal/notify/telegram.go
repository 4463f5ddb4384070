// Package notify forwards selected realtime events to an admin Telegram chat.
package notify

import (
	"fmt"
	"strings"

	"travellounge/internal/domain/models"
	"travellounge/internal/realtime"
	"travellounge/internal/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Sender is the subset of *tgbotapi.BotAPI the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram implements realtime.Publisher. A nil *Telegram is a no-op.
type Telegram struct {
	Bot    Sender
	ChatID int64

	// Async sends in a goroutine; tests turn it off.
	Async bool
}

// NewTelegram returns nil when token or chat id is missing, which disables
// notifications without further checks at the call sites.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	if strings.TrimSpace(token) == "" || chatID == 0 {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	utils.L().Info("telegram notifications enabled", zap.String("bot", bot.Self.UserName))
	return &Telegram{Bot: bot, ChatID: chatID, Async: true}, nil
}

func (t *Telegram) Publish(e realtime.Event) {
	if t == nil || t.Bot == nil {
		return
	}
	text := Format(e)
	if text == "" {
		return
	}
	if t.Async {
		go t.send(e.Type, text)
		return
	}
	t.send(e.Type, text)
}

func (t *Telegram) send(eventType, text string) {
	if _, err := t.Bot.Send(tgbotapi.NewMessage(t.ChatID, text)); err != nil {
		utils.L().Warn("telegram send failed", zap.String("event", eventType), zap.Error(err))
	}
}

// Format renders the chat text for an event. Events with no chat text return "".
func Format(e realtime.Event) string {
	switch p := e.Payload.(type) {
	case models.Booking:
		return formatBooking(p)
	case *models.Booking:
		if p != nil {
			return formatBooking(*p)
		}
	case models.ContactMessage:
		return formatContact(p)
	case *models.ContactMessage:
		if p != nil {
			return formatContact(*p)
		}
	case models.Review:
		return fmt.Sprintf("New review #%d (%d/5) by %s on service #%d, awaiting moderation.",
			p.ID, p.Rating, p.AuthorName, p.ServiceID)
	}
	return ""
}

func formatBooking(b models.Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "New booking #%d\n", b.ID)
	c := b.CustomerInfo.V
	fmt.Fprintf(&sb, "Customer: %s <%s>", c.Name, c.Email)
	if c.Phone != "" {
		fmt.Fprintf(&sb, " %s", c.Phone)
	}
	sb.WriteString("\n")
	d := b.ServiceDetails.V
	if d.Name != "" {
		fmt.Fprintf(&sb, "Service: %s\n", d.Name)
	}
	if d.CheckIn != "" {
		fmt.Fprintf(&sb, "Dates: %s", d.CheckIn)
		if d.CheckOut != "" {
			fmt.Fprintf(&sb, " to %s", d.CheckOut)
		}
		sb.WriteString("\n")
	}
	if d.Travelers > 0 {
		fmt.Fprintf(&sb, "Travelers: %d\n", d.Travelers)
	}
	fmt.Fprintf(&sb, "Total: %s", utils.FormatPrice(b.TotalAmount, b.Currency))
	return sb.String()
}

func formatContact(m models.ContactMessage) string {
	subject := m.Subject
	if subject == "" {
		subject = "(no subject)"
	}
	return fmt.Sprintf("Contact message from %s <%s>\n%s\n\n%s", m.Name, m.Email, subject, m.Message)
}
