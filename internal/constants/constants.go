package constants

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务类型常量
const (
	// TaskTrashPurge 软删除记录的延迟物理清理任务
	TaskTrashPurge = "content:trash_purge"
)

// 清理任务实体类型常量
const (
	TrashEntityPost     = "post"
	TrashEntityCategory = "category"
)

// 公开接口缓存 key 常量
const (
	CachePublishedPosts    = "public:posts"
	CachePublicCategories  = "public:categories"
	CachePublishedPostItem = "public:post" // 拼接为 public:post:{id}
)

// DuplicateTitleSuffix 复制文章时附加在标题后的后缀
const DuplicateTitleSuffix = "(コピー)"

// 文章标题长度限制
const (
	PostTitleMinLen = 1
	PostTitleMaxLen = 100
)
