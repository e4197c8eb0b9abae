package sqlite

// Schema DDL. Creation is idempotent: every statement guards with
// IF NOT EXISTS so Attach can run against an existing database file.
const (
	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL DEFAULT ''
);`

	createTasks = `CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    due_date TEXT,
    status TEXT NOT NULL DEFAULT 'pending',
    priority TEXT NOT NULL DEFAULT 'medium',
    category_id INTEGER,
    created_at TEXT NOT NULL,
    FOREIGN KEY (category_id) REFERENCES categories(id)
);`

	createTags = `CREATE TABLE IF NOT EXISTS tags (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    color TEXT NOT NULL DEFAULT '#88C0D0'
);`

	createTaskTags = `CREATE TABLE IF NOT EXISTS task_tags (
    task_id INTEGER NOT NULL,
    tag_id INTEGER NOT NULL,
    PRIMARY KEY (task_id, tag_id),
    FOREIGN KEY (task_id) REFERENCES tasks(id),
    FOREIGN KEY (tag_id) REFERENCES tags(id)
);`

	createHistory = `CREATE TABLE IF NOT EXISTS history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    action TEXT NOT NULL,
    task_title TEXT NOT NULL DEFAULT '',
    detail TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxTasksStatus    = `CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);`
	idxTasksCategory  = `CREATE INDEX IF NOT EXISTS idx_tasks_category ON tasks(category_id);`
	idxTasksDueDate   = `CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date);`
	idxTaskTagsTag    = `CREATE INDEX IF NOT EXISTS idx_task_tags_tag ON task_tags(tag_id);`
	idxHistoryCreated = `CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createCategories,
	createTasks,
	createTags,
	createTaskTags,
	createHistory,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxTasksStatus,
	idxTasksCategory,
	idxTasksDueDate,
	idxTaskTagsTag,
	idxHistoryCreated,
}
