package timetable

// PackDays fills the week with study/break pairs taken from tokens in order.
// Every day starts at AnchorTime and holds at most prefs.SessionsPerDay() pairs.
// Once the tokens run out the remaining days stay empty; tokens left over after
// Sunday are discarded.
func PackDays(tokens []string, prefs Preferences) Timetable {
	timetable := EmptyTimetable()
	perDay := prefs.SessionsPerDay()

	next := 0
	for day := range DaysPerWeek {
		cursor := AnchorTime
		for range perDay {
			if next >= len(tokens) {
				break
			}
			study := Slot{Subject: tokens[next], Start: cursor, End: cursor + ClockTime(prefs.SessionMinutes), Kind: Study}
			cursor = study.End
			pause := Slot{Subject: BreakLabel, Start: cursor, End: cursor + ClockTime(prefs.BreakMinutes), Kind: Break}
			cursor = pause.End

			timetable[day] = append(timetable[day], study, pause)
			next++
		}
	}
	return timetable
}
