// Package icalfeed renders a town's events as an iCalendar feed that calendar
// apps can subscribe to.
package icalfeed

import (
	"time"

	ics "github.com/arran4/golang-ical"

	"thecommons/internal/domain"
)

const productID = "-//The Commons//Town Events//EN"

// uidDomain qualifies event ids so UIDs are globally unique.
const uidDomain = "thecommons"

// Render builds a VCALENDAR holding one VEVENT per event. Events without a
// valid start are skipped. now is used as DTSTAMP.
func Render(town *domain.Town, events []*domain.Event, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	if town != nil {
		cal.SetName(town.Name)
		cal.SetXWRCalName(town.Name)
		if town.Description != "" {
			cal.SetXWRCalDesc(town.Description)
		}
	}

	stamp := now.UTC()
	for _, e := range events {
		if e == nil || !e.HasValidStart() {
			continue
		}
		ve := cal.AddEvent(e.ID + "@" + uidDomain)
		ve.SetDtStampTime(stamp)
		ve.SetStartAt(e.StartTime)
		ve.SetSummary(e.Title)
		if s := e.Summary(); s != "" {
			ve.SetDescription(s)
		}
		if e.Location != "" {
			ve.SetLocation(e.Location)
		}
		if e.CTAURL != "" {
			ve.SetURL(e.CTAURL)
		}
		// One CATEGORIES line per tag; a joined value would have its commas escaped.
		for _, tag := range e.Tags {
			ve.AddProperty(ics.ComponentPropertyCategories, tag)
		}
	}
	return cal.Serialize()
}
