package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkwell/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open 根据配置建立数据库连接并执行自动迁移。
// 返回的句柄由调用方注入到各个 repository 中，不再使用全局变量。
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", "sqlite":
		path := strings.TrimSpace(cfg.Path)
		if path == "" {
			path = "inkwell.db"
		}
		if err := ensureParentDir(path); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(SQLiteDSN(path))
	case "postgres":
		dialector = postgres.Open(cfg.URL)
	default:
		return nil, fmt.Errorf("db: unsupported driver %q", cfg.Driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{Logger: NewLogger()})
	if err != nil {
		return nil, fmt.Errorf("db: open: %w", err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, fmt.Errorf("db: migrate: %w", err)
	}
	return gdb, nil
}

// Migrate registers the post_tags join model and creates the schema.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.SetupJoinTable(&Post{}, "Tags", &PostTag{}); err != nil {
		return err
	}
	if err := gdb.SetupJoinTable(&Tag{}, "Posts", &PostTag{}); err != nil {
		return err
	}

	// 自动迁移模式，为核心模型创建表
	return gdb.AutoMigrate(
		&Author{},
		&Category{},
		&Tag{},
		&Post{},
		&PostTag{},
	)
}

// SQLiteDSN turns on foreign key enforcement for a sqlite path or DSN.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys=") {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

func ensureParentDir(path string) error {
	if strings.HasPrefix(path, "file:") {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
