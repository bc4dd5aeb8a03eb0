// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/coursework-api/models"
)

// roleTables maps a membership role to its join table
var roleTables = map[string]string{
	models.RoleStudent:    "course_student",
	models.RoleInstructor: "course_instructor",
}

func (s *Store) ListCourses(ctx context.Context) ([]models.Course, error) {
	summaries, err := queryCourseSummaries(ctx, s.db)
	if err != nil {
		return nil, err
	}

	courses := make([]models.Course, 0, len(summaries))
	for _, cs := range summaries {
		c, err := loadCourse(ctx, s.db, cs)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, nil
}

func (s *Store) CreateCourse(ctx context.Context, code, name string) (models.Course, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO course (code, name)
		VALUES ($1, $2)
		RETURNING id
	`, code, name).Scan(&id)
	if err != nil {
		return models.Course{}, fmt.Errorf("failed to insert course: %w", err)
	}

	return models.Course{
		ID:          id,
		Code:        code,
		Name:        name,
		Assignments: []models.AssignmentSummary{},
		Instructors: []models.MemberSummary{},
		Students:    []models.MemberSummary{},
	}, nil
}

// GetCourse returns the course with its assignments, instructors and students
func (s *Store) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	return getCourse(ctx, s.db, id)
}

// DeleteCourse removes the course and returns it as it was. Assignments and
// memberships go with it.
func (s *Store) DeleteCourse(ctx context.Context, id int64) (models.Course, error) {
	var course models.Course
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		course, err = getCourse(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM course WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete course: %w", err)
		}
		return nil
	})
	return course, err
}

func (s *Store) CreateMember(ctx context.Context, name, netID string) (models.Member, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO member (name, netid)
		VALUES ($1, $2)
		RETURNING id
	`, name, netID).Scan(&id)
	if err != nil {
		return models.Member{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return models.Member{
		ID:      id,
		Name:    name,
		NetID:   netID,
		Courses: []models.CourseSummary{},
	}, nil
}

// GetMember returns the user with the courses they take, then the ones they teach
func (s *Store) GetMember(ctx context.Context, id int64) (models.Member, error) {
	var m models.Member
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, netid
		FROM member
		WHERE id = $1
	`, id).Scan(&m.ID, &m.Name, &m.NetID)
	if err == sql.ErrNoRows {
		return models.Member{}, notFound("User")
	}
	if err != nil {
		return models.Member{}, fmt.Errorf("failed to query user: %w", err)
	}

	m.Courses = []models.CourseSummary{}
	for _, role := range []string{models.RoleStudent, models.RoleInstructor} {
		courses, err := queryMemberCourses(ctx, s.db, roleTables[role], id)
		if err != nil {
			return models.Member{}, err
		}
		m.Courses = append(m.Courses, courses...)
	}
	return m, nil
}

// AddMember puts a user on the course roster under role. A user holds at
// most one role per course.
func (s *Store) AddMember(ctx context.Context, courseID, userID int64, role string) (models.Course, error) {
	var course models.Course
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "course", courseID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("Course")
		}

		ok, err = exists(ctx, tx, "member", userID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("User")
		}

		var memberships int
		err = tx.QueryRowContext(ctx, `
			SELECT
				(SELECT COUNT(*) FROM course_student WHERE course_id = $1 AND user_id = $2) +
				(SELECT COUNT(*) FROM course_instructor WHERE course_id = $1 AND user_id = $2)
		`, courseID, userID).Scan(&memberships)
		if err != nil {
			return fmt.Errorf("failed to query memberships: %w", err)
		}
		if memberships > 0 {
			return ErrAlreadyMember
		}

		table, ok := roleTables[role]
		if !ok {
			return ErrInvalidRole
		}

		_, err = tx.ExecContext(ctx, "INSERT INTO "+table+" (course_id, user_id) VALUES ($1, $2)", courseID, userID)
		if err != nil {
			return fmt.Errorf("failed to add user to course: %w", err)
		}

		course, err = getCourse(ctx, tx, courseID)
		return err
	})
	return course, err
}

func (s *Store) CreateAssignment(ctx context.Context, courseID int64, title string, dueDate int64) (models.Assignment, error) {
	a := models.Assignment{Title: title, DueDate: dueDate}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			SELECT id, code, name
			FROM course
			WHERE id = $1
		`, courseID).Scan(&a.Course.ID, &a.Course.Code, &a.Course.Name)
		if err == sql.ErrNoRows {
			return notFound("Course")
		}
		if err != nil {
			return fmt.Errorf("failed to query course: %w", err)
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO assignment (title, due_date, course_id)
			VALUES ($1, $2, $3)
			RETURNING id
		`, title, dueDate, courseID).Scan(&a.ID)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Assignment{}, err
	}

	return a, nil
}

func getCourse(ctx context.Context, q querier, id int64) (models.Course, error) {
	var cs models.CourseSummary
	err := q.QueryRowContext(ctx, `
		SELECT id, code, name
		FROM course
		WHERE id = $1
	`, id).Scan(&cs.ID, &cs.Code, &cs.Name)
	if err == sql.ErrNoRows {
		return models.Course{}, notFound("Course")
	}
	if err != nil {
		return models.Course{}, fmt.Errorf("failed to query course: %w", err)
	}

	return loadCourse(ctx, q, cs)
}

func loadCourse(ctx context.Context, q querier, cs models.CourseSummary) (models.Course, error) {
	c := models.Course{ID: cs.ID, Code: cs.Code, Name: cs.Name}

	var err error
	c.Assignments, err = queryCourseAssignments(ctx, q, cs.ID)
	if err != nil {
		return models.Course{}, err
	}
	c.Instructors, err = queryCourseMembers(ctx, q, roleTables[models.RoleInstructor], cs.ID)
	if err != nil {
		return models.Course{}, err
	}
	c.Students, err = queryCourseMembers(ctx, q, roleTables[models.RoleStudent], cs.ID)
	if err != nil {
		return models.Course{}, err
	}
	return c, nil
}

func queryCourseSummaries(ctx context.Context, q querier) ([]models.CourseSummary, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, code, name FROM course ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []models.CourseSummary{}
	for rows.Next() {
		var c models.CourseSummary
		if err := rows.Scan(&c.ID, &c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func queryCourseAssignments(ctx context.Context, q querier, courseID int64) ([]models.AssignmentSummary, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, title, due_date
		FROM assignment
		WHERE course_id = $1
		ORDER BY id
	`, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	assignments := []models.AssignmentSummary{}
	for rows.Next() {
		var a models.AssignmentSummary
		if err := rows.Scan(&a.ID, &a.Title, &a.DueDate); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// table is one of roleTables, never user input
func queryCourseMembers(ctx context.Context, q querier, table string, courseID int64) ([]models.MemberSummary, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT m.id, m.name, m.netid
		FROM member m
		JOIN `+table+` r ON r.user_id = m.id
		WHERE r.course_id = $1
		ORDER BY m.id
	`, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	members := []models.MemberSummary{}
	for rows.Next() {
		var m models.MemberSummary
		if err := rows.Scan(&m.ID, &m.Name, &m.NetID); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func queryMemberCourses(ctx context.Context, q querier, table string, userID int64) ([]models.CourseSummary, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT c.id, c.code, c.name
		FROM course c
		JOIN `+table+` r ON r.course_id = c.id
		WHERE r.user_id = $1
		ORDER BY c.id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	courses := []models.CourseSummary{}
	for rows.Next() {
		var c models.CourseSummary
		if err := rows.Scan(&c.ID, &c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
