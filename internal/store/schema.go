package store

import (
	"context"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	kvTable   = "kv_entries"
	runsTable = "runs"
)

var (
	// kvColumns holds the columns of the key-value table.
	kvColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	kvEntriesTable = &schema.Table{
		Name:       kvTable,
		Columns:    kvColumns,
		PrimaryKey: []*schema.Column{kvColumns[0]},
	}

	// runColumns holds the columns of the finished-run history table.
	runColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "player", Type: field.TypeString},
		{Name: "points", Type: field.TypeInt},
		{Name: "best", Type: field.TypeInt},
		{Name: "level_index", Type: field.TypeInt},
		{Name: "case_index", Type: field.TypeInt},
		{Name: "lives", Type: field.TypeInt},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime},
	}
	runsTableDef = &schema.Table{
		Name:       runsTable,
		Columns:    runColumns,
		PrimaryKey: []*schema.Column{runColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_ended_at",
				Unique:  false,
				Columns: []*schema.Column{runColumns[9]},
			},
		},
	}

	tables = []*schema.Table{kvEntriesTable, runsTableDef}
)

// migrate creates or updates the tables on drv.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}
