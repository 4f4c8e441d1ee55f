package stats

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"
	"github.com/studymate/studymate/pkg/timetable"
)

type PlanReader interface {
	Current(ctx context.Context) (timetable.Plan, error)
}

type Service interface {
	GetSummary(ctx context.Context) (Summary, error)
}

type ServiceImpl struct {
	plans PlanReader
}

func NewService(plans PlanReader) *ServiceImpl {
	return &ServiceImpl{plans: plans}
}

func (s *ServiceImpl) GetSummary(ctx context.Context) (Summary, error) {
	plan, err := s.plans.Current(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to get timetable: %w", err)
	}
	return Summarize(plan), nil
}

type studySlot struct {
	slot      timetable.Slot
	completed bool
}

// Summarize computes the weekly summary of plan.
func Summarize(plan timetable.Plan) Summary {
	var studies []studySlot
	summary := Summary{Days: make([]DailyStats, 0, timetable.DaysPerWeek)}

	for day, slots := range plan.Timetable {
		daily := DailyStats{Day: timetable.WeekdayNames[day]}
		for idx, slot := range slots {
			switch slot.Kind {
			case timetable.Study:
				daily.Sessions++
				daily.StudyTime += slot.Duration()
				studies = append(studies, studySlot{slot: slot, completed: plan.IsCompleted(timetable.SlotRef{Day: day, Index: idx})})
			case timetable.Break:
				daily.BreakTime += slot.Duration()
			}
		}
		summary.Days = append(summary.Days, daily)
		summary.StudyTime += daily.StudyTime
		summary.BreakTime += daily.BreakTime
	}

	bySubject := lo.GroupBy(studies, func(s studySlot) string { return s.slot.Subject })
	names := lo.Keys(bySubject)
	slices.Sort(names)
	summary.Subjects = make([]SubjectStats, 0, len(names))
	for _, name := range names {
		group := bySubject[name]
		summary.Subjects = append(summary.Subjects, SubjectStats{
			Subject:   name,
			Sessions:  len(group),
			StudyTime: lo.SumBy(group, func(s studySlot) time.Duration { return s.slot.Duration() }),
			Completed: lo.CountBy(group, func(s studySlot) bool { return s.completed }),
		})
	}

	summary.TotalSessions = len(studies)
	summary.CompletedSessions = lo.CountBy(studies, func(s studySlot) bool { return s.completed })
	summary.DroppedSessions = plan.Dropped()
	return summary
}
