package main

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"golang.org/x/exp/maps"

	"aoc2018"
)

type timestamp struct {
	year, month, day, hour, minute int
}

func (t timestamp) compare(u timestamp) int {
	for _, c := range [...]int{
		cmp.Compare(t.year, u.year),
		cmp.Compare(t.month, u.month),
		cmp.Compare(t.day, u.day),
		cmp.Compare(t.hour, u.hour),
	} {
		if c != 0 {
			return c
		}
	}
	return cmp.Compare(t.minute, u.minute)
}

// action is one of beginShift, fallAsleep or wakeUp.
type action interface {
	isAction()
}

type beginShift struct{ guard int }
type fallAsleep struct{}
type wakeUp struct{}

func (beginShift) isAction() {}
func (fallAsleep) isAction() {}
func (wakeUp) isAction()     {}

type guardEvent struct {
	at  timestamp
	act action
}

var (
	eventRx = regexp.MustCompile(`^\[(\d+)-(\d+)-(\d+) (\d+):(\d+)\] (.+)$`)
	shiftRx = regexp.MustCompile(`^Guard #(\d+) begins shift$`)
)

func parseGuardEvent(line string) (guardEvent, error) {
	m := eventRx.FindStringSubmatch(line)
	if m == nil {
		return guardEvent{}, fmt.Errorf("%w: guard event %q", aoc.ErrParse, line)
	}
	var ev guardEvent
	ts := aoc.Ints(m[1:6]...)
	ev.at = timestamp{ts[0], ts[1], ts[2], ts[3], ts[4]}
	switch text := m[6]; text {
	case "falls asleep":
		ev.act = fallAsleep{}
	case "wakes up":
		ev.act = wakeUp{}
	default:
		sm := shiftRx.FindStringSubmatch(text)
		if sm == nil {
			return guardEvent{}, fmt.Errorf("%w: guard event %q", aoc.ErrParse, line)
		}
		id, err := strconv.Atoi(sm[1])
		if err != nil {
			return guardEvent{}, fmt.Errorf("%w: guard event %q: %v", aoc.ErrParse, line, err)
		}
		ev.act = beginShift{guard: id}
	}
	return ev, nil
}

// parseGuardEvents parses the log and sorts it chronologically.
func parseGuardEvents(lines []string) ([]guardEvent, error) {
	events := make([]guardEvent, 0, len(lines))
	for _, l := range lines {
		ev, err := parseGuardEvent(l)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	slices.SortStableFunc(events, func(a, b guardEvent) int {
		return a.at.compare(b.at)
	})
	return events, nil
}

// guardSchedule counts, per minute of the midnight hour, how many nights a
// guard was asleep at that minute.
type guardSchedule struct {
	asleep  int
	minutes [60]int
}

// bestMinute returns the minute the guard was most often asleep, and how
// often. Ties go to the earliest minute.
func (g *guardSchedule) bestMinute() (minute, count int) {
	for m, c := range g.minutes {
		if c > count {
			minute, count = m, c
		}
	}
	return minute, count
}

var (
	errNoGuard = errors.New("sleep event before any guard shift")
	errNoSleep = errors.New("no guard ever fell asleep")
)

func sleepSchedules(events []guardEvent) (map[int]*guardSchedule, error) {
	schedules := make(map[int]*guardSchedule)
	guard, sleptAt := -1, -1
	for _, ev := range events {
		switch a := ev.act.(type) {
		case beginShift:
			guard, sleptAt = a.guard, -1
		case fallAsleep:
			if guard == -1 {
				return nil, fmt.Errorf("%w at %+v", errNoGuard, ev.at)
			}
			sleptAt = ev.at.minute
		case wakeUp:
			if guard == -1 || sleptAt == -1 {
				return nil, fmt.Errorf("%w at %+v", errNoGuard, ev.at)
			}
			g := schedules[guard]
			if g == nil {
				g = new(guardSchedule)
				schedules[guard] = g
			}
			g.asleep += ev.at.minute - sleptAt
			for m := sleptAt; m < ev.at.minute; m++ {
				g.minutes[m]++
			}
			sleptAt = -1
		}
	}
	return schedules, nil
}

// sleepiestGuard returns the id maximizing score. Ties go to the lowest id.
func sleepiestGuard(schedules map[int]*guardSchedule, score func(*guardSchedule) int) (int, error) {
	if len(schedules) == 0 {
		return 0, errNoSleep
	}
	ids := maps.Keys(schedules)
	slices.Sort(ids)
	best, bestScore := -1, -1
	for _, id := range ids {
		if sc := score(schedules[id]); sc > bestScore {
			best, bestScore = id, sc
		}
	}
	return best, nil
}

func (s solver) guardSchedules() map[int]*guardSchedule {
	events := aoc.MustGet(parseGuardEvents(s.Lines()))
	return aoc.MustGet(sleepSchedules(events))
}

/*
want=240

[1518-11-01 00:00] Guard #10 begins shift
[1518-11-01 00:05] falls asleep
[1518-11-01 00:25] wakes up
[1518-11-01 00:30] falls asleep
[1518-11-01 00:55] wakes up
[1518-11-01 23:58] Guard #99 begins shift
[1518-11-02 00:40] falls asleep
[1518-11-02 00:50] wakes up
[1518-11-03 00:05] Guard #10 begins shift
[1518-11-03 00:24] falls asleep
[1518-11-03 00:29] wakes up
[1518-11-04 00:02] Guard #99 begins shift
[1518-11-04 00:36] falls asleep
[1518-11-04 00:46] wakes up
[1518-11-05 00:03] Guard #99 begins shift
[1518-11-05 00:45] falls asleep
[1518-11-05 00:55] wakes up
*/
func (s solver) D4p1() any {
	schedules := s.guardSchedules()
	id := aoc.MustGet(sleepiestGuard(schedules, func(g *guardSchedule) int { return g.asleep }))
	m, _ := schedules[id].bestMinute()
	return id * m
}

// want=4455
func (s solver) D4p2() any {
	schedules := s.guardSchedules()
	id := aoc.MustGet(sleepiestGuard(schedules, func(g *guardSchedule) int {
		_, c := g.bestMinute()
		return c
	}))
	m, _ := schedules[id].bestMinute()
	return id * m
}
