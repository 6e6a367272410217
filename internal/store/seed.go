package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// sample is a demo call used by Seed.
type sample struct {
	voiceID    string
	transcript string
}

var samples = []sample{
	{
		voiceID:    "JBFqnCBsd6RMkjVDRZzb",
		transcript: "Client is interested in a complete overhaul of their legacy CRM system. They need better integration with email marketing and automated follow-ups. Budget is around $50k. Timeline is Q3.",
	},
	{
		voiceID:    "TxGEqnCsz6RMkjVDRZzb",
		transcript: "Meeting with Sarah from TechCorp. They are looking for an AI chatbot to handle customer support L1 queries. Specific focus on reducing response time. Timeline: 3 months. Needs multi-language support.",
	},
	{
		voiceID:    "XbGEqnCsz6RMkjVDRZxc",
		transcript: "Discussed the new mobile app feature for loyalty points using blockchain. The client wants a gamified experience. Needs UI/UX design and backend implementation ASAP.",
	},
	{
		voiceID:    "ErGEqnCsz6RMkjVDRZxy",
		transcript: "Proposal needed for a web scraping project. They want to monitor competitor prices daily. Python/Scrapy preferred. Data should be exported to CSV and dashboard.",
	},
	{
		voiceID:    "PiGEqnCsz6RMkjVDRZxz",
		transcript: "Healthcare client needs a secure patient portal. HIPAA compliance is mandatory. Appointment scheduling and tele-consultation features are required.",
	},
}

// SampleCount is the number of voice logs Seed inserts.
var SampleCount = len(samples)

// Seed inserts the demo voice logs when s is empty and returns how many it
// added. Sample i is dated i days before now, so the first sample lists
// first.
func Seed(ctx context.Context, s Store, now time.Time) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	for i, smp := range samples {
		v := &VoiceLog{
			VoiceID:    smp.voiceID,
			Transcript: smp.transcript,
			AudioURL:   fmt.Sprintf("https://example.com/audio/%s.mp3", uuid.New()),
			CreatedAt:  now.Add(-time.Duration(i) * 24 * time.Hour),
		}
		if err := s.Create(ctx, v); err != nil {
			return i, fmt.Errorf("seeding sample %d: %w", i+1, err)
		}
	}
	return len(samples), nil
}
