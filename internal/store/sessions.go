package store

import "time"

func (s *Store) GetSessions() []PomodoroSession {
	return readCollection[PomodoroSession](s, sessionsKey)
}

func (s *Store) SetSessions(sessions []PomodoroSession) {
	writeJSON(s, sessionsKey, sessions)
}

func (s *Store) AddSession(session PomodoroSession) PomodoroSession {
	if session.ID == "" {
		session.ID = NewID()
	}
	sessions := s.GetSessions()
	sessions = append(sessions, session)
	s.SetSessions(sessions)
	return session
}

// RecordSession appends a completed focus session. It satisfies the timer
// engine's Recorder interface.
func (s *Store) RecordSession(taskID string, start, end time.Time, minutes int) {
	s.AddSession(PomodoroSession{
		TaskID:    taskID,
		StartTime: start,
		EndTime:   &end,
		Duration:  minutes,
		Completed: true,
	})
}
