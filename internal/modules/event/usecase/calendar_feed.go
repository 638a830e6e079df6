package usecase

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/communitycal/events-api/internal/modules/event/domain"
	"github.com/communitycal/events-api/pkg/helper"
	"github.com/communitycal/events-api/pkg/logger"
)

// feedTrailingWindow events that ended longer ago than this are dropped from the feed
const feedTrailingWindow = 14 * 24 * time.Hour

// BuildCalendarFeed serialize events into an ics calendar.
// Broken entries are logged and skipped, the feed itself always serializes.
func BuildCalendarFeed(serverOrigin string, events []domain.Event, now time.Time) []byte {
	cal := ics.NewCalendar()
	cal.SetProductId(fmt.Sprintf("-//%s/ics//EN", helper.SecondLevelDomain(serverOrigin)))

	cutoff := now.Add(-feedTrailingWindow)
	for i := range events {
		event := &events[i]
		if event.End.Before(cutoff) {
			continue
		}
		if err := validateFeedEntry(event); err != nil {
			logger.LogEf("calendar feed: skip event %s: %v", event.ID.Hex(), err)
			continue
		}

		entry := cal.AddEvent(event.ID.Hex())
		entry.SetDtStampTime(now.UTC())
		entry.SetStartAt(event.Start.UTC().Truncate(time.Minute))
		entry.SetEndAt(event.End.UTC().Truncate(time.Minute))
		entry.SetSummary(event.Title)
		entry.SetDescription(event.Description)
		entry.SetLocation(event.Location)
		entry.SetURL(fmt.Sprintf("%s/events/%s", serverOrigin, event.ID.Hex()))

		// two audio reminders, repeated twice each
		addAudioAlarm(entry, "-PT4H")
		addAudioAlarm(entry, "-P1D")
	}

	return []byte(cal.Serialize())
}

func addAudioAlarm(entry *ics.VEvent, trigger string) {
	alarm := entry.AddAlarm()
	alarm.SetAction(ics.ActionAudio)
	alarm.SetTrigger(trigger)
	alarm.SetProperty(ics.ComponentProperty("REPEAT"), "2")
	alarm.SetProperty(ics.ComponentProperty("DURATION"), "PT15M")
	alarm.SetProperty(ics.ComponentProperty("ATTACH"), "Glass")
}

func validateFeedEntry(event *domain.Event) error {
	if event.ID.IsZero() {
		return fmt.Errorf("missing id")
	}
	if event.Title == "" {
		return fmt.Errorf("missing title")
	}
	if event.Start.IsZero() || event.End.IsZero() {
		return fmt.Errorf("missing start or end time")
	}
	return nil
}
