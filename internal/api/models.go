package api

import "github.com/phrazzld/task-tracker/internal/domain"

// CreateTaskRequest is the body of POST /api/tasks.
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
}

// fields converts the request into domain input. Absent optional fields
// stay nil so the domain defaults apply.
func (req CreateTaskRequest) fields() domain.TaskFields {
	title := req.Title
	return domain.TaskFields{
		Title:       &title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
	}
}

// UpdateTaskRequest is the body of PUT /api/tasks/{id}. Any subset of the
// fields may be present; a JSON null counts as absent.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
}

func (req UpdateTaskRequest) fields() domain.TaskFields {
	return domain.TaskFields{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
	}
}

// TaskResponse is the JSON shape of a task.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}

// CreateTaskResponse is returned by POST /api/tasks.
type CreateTaskResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Status:      task.Status,
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
