package worker

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/inkwell-cms/inkwell/internal/constants"
	"github.com/inkwell-cms/inkwell/internal/logger"
	"github.com/inkwell-cms/inkwell/internal/provider"
	"github.com/inkwell-cms/inkwell/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskTrashPurge, c.handleTrashPurge)
}

// handleTrashPurge 物理清除保留期已满的软删除记录
func (c *Consumer) handleTrashPurge(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_trash_purge_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.TrashPurgePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_trash_purge_unmarshal_failed", "error", err)
		return err
	}
	id := strings.TrimSpace(payload.ID)
	if id == "" {
		logger.Debugw("worker_trash_purge_skip_invalid_payload", "entity", payload.Entity)
		return nil
	}

	var err error
	switch payload.Entity {
	case constants.TrashEntityPost:
		err = c.PostRepo.PurgeDeleted(id, time.Now())
	case constants.TrashEntityCategory:
		err = c.CategoryRepo.PurgeDeleted(id, time.Now())
	default:
		logger.Debugw("worker_trash_purge_skip_unknown_entity", "entity", payload.Entity, "id", id)
		return nil
	}
	if err != nil {
		logger.Warnw("worker_trash_purge_failed", "entity", payload.Entity, "id", id, "error", err)
		return err
	}
	return nil
}
