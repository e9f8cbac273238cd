package editor

import (
	"context"
	"errors"
	"sort"
	"strings"
)

// State 编辑器状态
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateSaving  State = "saving"
	StateError   State = "error"
)

var (
	// ErrNotEditable 当前状态不允许编辑
	ErrNotEditable = errors.New("editor is not editable in current state")
	// ErrNotSaving 当前没有进行中的保存
	ErrNotSaving = errors.New("no save in flight")
	// ErrNoChanges 没有未保存的修改
	ErrNoChanges = errors.New("no unsaved changes")
)

// Snapshot 文章编辑快照。CategoryIDs 按集合语义比较，顺序无关。
type Snapshot struct {
	Title         string
	Content       string
	CoverImageURL string
	Published     bool
	CategoryIDs   []string
}

// Equal 结构化比较两个快照
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Title != other.Title ||
		s.Content != other.Content ||
		s.CoverImageURL != other.CoverImageURL ||
		s.Published != other.Published {
		return false
	}
	return equalIDSets(s.CategoryIDs, other.CategoryIDs)
}

func equalIDSets(a, b []string) bool {
	setA := make(map[string]struct{}, len(a))
	for _, id := range a {
		setA[id] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, id := range b {
		setB[id] = struct{}{}
	}
	if len(setA) != len(setB) {
		return false
	}
	for id := range setA {
		if _, ok := setB[id]; !ok {
			return false
		}
	}
	return true
}

// CategoryCreator 行内创建分类并返回新分类 ID
type CategoryCreator interface {
	CreateCategory(ctx context.Context, name string) (string, error)
}

// Editor 文章编辑器状态机。
// 状态流转 Loading → Ready → (Saving → Ready | Saving → Error)，
// Dirty 是独立标志，由当前草稿与基线快照的整体比较得出。
type Editor struct {
	state    State
	baseline Snapshot
	draft    Snapshot
	selected map[string]struct{}
	saveErr  error
}

// New 创建编辑器，初始为 Loading 状态
func New() *Editor {
	return &Editor{
		state:    StateLoading,
		selected: make(map[string]struct{}),
	}
}

// State 返回当前状态
func (e *Editor) State() State {
	return e.state
}

// Err 返回最近一次保存失败的错误
func (e *Editor) Err() error {
	return e.saveErr
}

// Load 载入记录并以其为基线，进入 Ready
func (e *Editor) Load(record Snapshot) {
	e.baseline = record
	e.draft = record
	e.selected = make(map[string]struct{}, len(record.CategoryIDs))
	for _, id := range record.CategoryIDs {
		e.selected[id] = struct{}{}
	}
	e.saveErr = nil
	e.state = StateReady
}

// SetTitle 修改标题
func (e *Editor) SetTitle(title string) error {
	if e.state != StateReady {
		return ErrNotEditable
	}
	e.draft.Title = title
	return nil
}

// SetContent 修改正文
func (e *Editor) SetContent(content string) error {
	if e.state != StateReady {
		return ErrNotEditable
	}
	e.draft.Content = content
	return nil
}

// SetCoverImageURL 修改封面图
func (e *Editor) SetCoverImageURL(url string) error {
	if e.state != StateReady {
		return ErrNotEditable
	}
	e.draft.CoverImageURL = url
	return nil
}

// SetPublished 修改发布状态
func (e *Editor) SetPublished(published bool) error {
	if e.state != StateReady {
		return ErrNotEditable
	}
	e.draft.Published = published
	return nil
}

// ToggleCategory 切换分类选中状态
func (e *Editor) ToggleCategory(id string) error {
	if e.state != StateReady {
		return ErrNotEditable
	}
	if _, ok := e.selected[id]; ok {
		delete(e.selected, id)
	} else {
		e.selected[id] = struct{}{}
	}
	return nil
}

// CategorySelected 判断分类是否被选中
func (e *Editor) CategorySelected(id string) bool {
	_, ok := e.selected[id]
	return ok
}

// CreateAndSelectCategory 行内创建分类并立即选中，不等待整页保存
func (e *Editor) CreateAndSelectCategory(ctx context.Context, creator CategoryCreator, name string) (string, error) {
	if e.state != StateReady {
		return "", ErrNotEditable
	}
	id, err := creator.CreateCategory(ctx, strings.TrimSpace(name))
	if err != nil {
		return "", err
	}
	e.selected[id] = struct{}{}
	return id, nil
}

// Draft 返回当前草稿快照
func (e *Editor) Draft() Snapshot {
	draft := e.draft
	draft.CategoryIDs = e.selectedIDs()
	return draft
}

func (e *Editor) selectedIDs() []string {
	ids := make([]string, 0, len(e.selected))
	for id := range e.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Dirty 判断草稿相对基线是否有改动
func (e *Editor) Dirty() bool {
	if e.state == StateLoading {
		return false
	}
	return !e.Draft().Equal(e.baseline)
}

// CanSave 能否发起保存：仅在 Ready 且有改动时允许
func (e *Editor) CanSave() bool {
	return e.state == StateReady && e.Dirty()
}

// ShouldConfirmLeave 离开页面是否需要确认
func (e *Editor) ShouldConfirmLeave() bool {
	return e.Dirty()
}

// BeginSave 发起保存，返回需要提交的完整草稿
func (e *Editor) BeginSave() (Snapshot, error) {
	if e.state != StateReady {
		return Snapshot{}, ErrNotEditable
	}
	if !e.Dirty() {
		return Snapshot{}, ErrNoChanges
	}
	e.state = StateSaving
	e.saveErr = nil
	return e.Draft(), nil
}

// CompleteSave 保存成功，以服务端返回的记录重置基线
func (e *Editor) CompleteSave(saved Snapshot) error {
	if e.state != StateSaving {
		return ErrNotSaving
	}
	e.Load(saved)
	return nil
}

// FailSave 保存失败，进入 Error，草稿保留
func (e *Editor) FailSave(err error) error {
	if e.state != StateSaving {
		return ErrNotSaving
	}
	e.saveErr = err
	e.state = StateError
	return nil
}

// Resume 从 Error 回到 Ready，允许继续编辑或重试保存
func (e *Editor) Resume() error {
	if e.state != StateError {
		return errors.New("editor is not in error state")
	}
	e.saveErr = nil
	e.state = StateReady
	return nil
}
