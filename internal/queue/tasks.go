package queue

import (
	"encoding/json"

	"github.com/inkwell-cms/inkwell/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskTrashPurge 软删除记录的延迟物理清理任务
	TaskTrashPurge = constants.TaskTrashPurge
)

// TrashPurgePayload 清理任务负载
type TrashPurgePayload struct {
	Entity string `json:"entity"` // post / category
	ID     string `json:"id"`
}

// NewTrashPurgeTask 构造清理任务
func NewTrashPurgeTask(payload TrashPurgePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTrashPurge, data), nil
}
