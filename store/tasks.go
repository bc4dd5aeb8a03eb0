// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/coursework-api/models"
)

// ListTasks returns every task with its subtasks and categories
func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	tasks, err := queryTasks(ctx, s.db)
	if err != nil {
		return nil, err
	}

	// Children are loaded after the task cursor is closed
	for i := range tasks {
		if err := loadTaskChildren(ctx, s.db, &tasks[i]); err != nil {
			return nil, err
		}
	}

	return tasks, nil
}

func (s *Store) CreateTask(ctx context.Context, description string, done bool) (models.Task, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO task (description, done)
		VALUES ($1, $2)
		RETURNING id
	`, description, done).Scan(&id)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}

	return models.Task{
		ID:          id,
		Description: description,
		Done:        done,
		Subtasks:    []models.Subtask{},
		Categories:  []models.Category{},
	}, nil
}

func (s *Store) GetTask(ctx context.Context, id int64) (models.Task, error) {
	return getTask(ctx, s.db, id)
}

// UpdateTask changes the given fields; nil fields keep their stored value.
func (s *Store) UpdateTask(ctx context.Context, id int64, description *string, done *bool) (models.Task, error) {
	desc := sql.NullString{}
	if description != nil {
		desc = sql.NullString{String: *description, Valid: true}
	}
	d := sql.NullBool{}
	if done != nil {
		d = sql.NullBool{Bool: *done, Valid: true}
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE task
		SET description = COALESCE($1, description), done = COALESCE($2, done)
		WHERE id = $3
	`, desc, d, id)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	if n == 0 {
		return models.Task{}, notFound("Task")
	}

	return getTask(ctx, s.db, id)
}

// DeleteTask removes the task and returns it as it was. Subtasks and
// category links go with it.
func (s *Store) DeleteTask(ctx context.Context, id int64) (models.Task, error) {
	var task models.Task
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		task, err = getTask(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM task WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		return nil
	})
	return task, err
}

func (s *Store) ListSubtasks(ctx context.Context, taskID int64) ([]models.Subtask, error) {
	ok, err := exists(ctx, s.db, "task", taskID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("Task")
	}

	return querySubtasks(ctx, s.db, taskID)
}

func (s *Store) CreateSubtask(ctx context.Context, taskID int64, description string, done bool) (models.Subtask, error) {
	subtask := models.Subtask{Description: description, Done: done, TaskID: taskID}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "task", taskID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("Task")
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO subtask (description, done, task_id)
			VALUES ($1, $2, $3)
			RETURNING id
		`, description, done, taskID).Scan(&subtask.ID)
		if err != nil {
			return fmt.Errorf("failed to insert subtask: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Subtask{}, err
	}

	return subtask, nil
}

// AssignCategory links the category with the given color to the task,
// creating the category first if no task uses that color yet.
// Linking an already linked category is a no-op.
func (s *Store) AssignCategory(ctx context.Context, taskID int64, description *string, color string) (models.Task, error) {
	var task models.Task
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "task", taskID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("Task")
		}

		var categoryID int64
		err = tx.QueryRowContext(ctx, `SELECT id FROM category WHERE color = $1`, color).Scan(&categoryID)
		if err == sql.ErrNoRows {
			if description == nil {
				return ErrDescriptionRequired
			}
			err = tx.QueryRowContext(ctx, `
				INSERT INTO category (description, color)
				VALUES ($1, $2)
				RETURNING id
			`, *description, color).Scan(&categoryID)
			if err != nil {
				return fmt.Errorf("failed to insert category: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to query category: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO task_category (task_id, category_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, taskID, categoryID)
		if err != nil {
			return fmt.Errorf("failed to link category: %w", err)
		}

		task, err = getTask(ctx, tx, taskID)
		return err
	})
	return task, err
}

func getTask(ctx context.Context, q querier, id int64) (models.Task, error) {
	var t models.Task
	err := q.QueryRowContext(ctx, `
		SELECT id, description, done
		FROM task
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Description, &t.Done)
	if err == sql.ErrNoRows {
		return models.Task{}, notFound("Task")
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to query task: %w", err)
	}

	if err := loadTaskChildren(ctx, q, &t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

func queryTasks(ctx context.Context, q querier) ([]models.Task, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, description, done FROM task ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Description, &t.Done); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func loadTaskChildren(ctx context.Context, q querier, t *models.Task) error {
	var err error
	t.Subtasks, err = querySubtasks(ctx, q, t.ID)
	if err != nil {
		return err
	}
	t.Categories, err = queryTaskCategories(ctx, q, t.ID)
	return err
}

func querySubtasks(ctx context.Context, q querier, taskID int64) ([]models.Subtask, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, description, done, task_id
		FROM subtask
		WHERE task_id = $1
		ORDER BY id
	`, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subtasks: %w", err)
	}
	defer rows.Close()

	subtasks := []models.Subtask{}
	for rows.Next() {
		var st models.Subtask
		if err := rows.Scan(&st.ID, &st.Description, &st.Done, &st.TaskID); err != nil {
			return nil, fmt.Errorf("failed to scan subtask: %w", err)
		}
		subtasks = append(subtasks, st)
	}
	return subtasks, rows.Err()
}

func queryTaskCategories(ctx context.Context, q querier, taskID int64) ([]models.Category, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT c.id, c.description, c.color
		FROM category c
		JOIN task_category tc ON tc.category_id = c.id
		WHERE tc.task_id = $1
		ORDER BY c.id
	`, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Description, &c.Color); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
