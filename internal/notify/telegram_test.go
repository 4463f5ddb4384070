package notify

import (
	"errors"
	"strings"
	"testing"

	"travellounge/internal/db"
	"travellounge/internal/domain/models"
	"travellounge/internal/realtime"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, m)
	}
	return tgbotapi.Message{}, f.err
}

func sampleBooking() models.Booking {
	return models.Booking{
		ID: 42,
		CustomerInfo: db.NewJSON(models.CustomerInfo{
			Name: "Anna", Email: "anna@example.com", Phone: "+230 5555",
		}),
		ServiceDetails: db.NewJSON(models.ServiceDetails{
			Name: "Catamaran cruise", CheckIn: "2024-06-01", CheckOut: "2024-06-03", Travelers: 2,
		}),
		TotalAmount: 12500,
		Currency:    "mur",
	}
}

func TestFormatBooking(t *testing.T) {
	text := Format(realtime.Event{Type: realtime.EventBookingCreated, Payload: sampleBooking()})
	require.Contains(t, text, "New booking #42")
	require.Contains(t, text, "Anna <anna@example.com> +230 5555")
	require.Contains(t, text, "Dates: 2024-06-01 to 2024-06-03")
	require.Contains(t, text, "Travelers: 2")
	require.True(t, strings.HasSuffix(text, "Total: MUR 12,500"), text)
}

func TestFormatIgnoresUnknownPayload(t *testing.T) {
	require.Empty(t, Format(realtime.Event{Type: realtime.EventPresence, Payload: realtime.Presence{Admins: 1}}))
}

func TestTelegramPublishSendsToChat(t *testing.T) {
	fake := &fakeSender{}
	tg := &Telegram{Bot: fake, ChatID: 99}

	tg.Publish(realtime.Event{Type: realtime.EventContactReceived, Payload: &models.ContactMessage{
		Name: "Ravi", Email: "ravi@example.com", Message: "Do you do airport transfers?",
	}})
	tg.Publish(realtime.Event{Type: realtime.EventPresence})

	require.Len(t, fake.sent, 1)
	require.Equal(t, int64(99), fake.sent[0].ChatID)
	require.Contains(t, fake.sent[0].Text, "(no subject)")
}

func TestTelegramSendErrorIsSwallowed(t *testing.T) {
	fake := &fakeSender{err: errors.New("network down")}
	tg := &Telegram{Bot: fake, ChatID: 1}
	tg.Publish(realtime.Event{Type: realtime.EventBookingCreated, Payload: sampleBooking()})
	require.Len(t, fake.sent, 1)
}

func TestNilTelegramIsNoop(t *testing.T) {
	var tg *Telegram
	tg.Publish(realtime.Event{Type: realtime.EventBookingCreated, Payload: sampleBooking()})

	got, err := NewTelegram("", 0)
	require.NoError(t, err)
	require.Nil(t, got)
}
