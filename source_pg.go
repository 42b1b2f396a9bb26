package tsgen

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const (
	assetTableName = "_asset"

	modelsQueryFormat = `
SELECT
	name,
	description
FROM %s._models%s
ORDER BY name`

	metaQueryFormat = `
SELECT
	name,
	type,
	link_type,
	items,
	is_required,
	is_omitted,
	validations
FROM %s.%s
ORDER BY _id`
)

// PGModelRow is one row of the _models table.
type PGModelRow struct {
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
}

// PGMetaRow is one row of a <table>__meta table.
type PGMetaRow struct {
	Name        string         `db:"name"`
	Type        string         `db:"type"`
	LinkType    sql.NullString `db:"link_type"`
	Items       []byte         `db:"items"`
	Required    bool           `db:"is_required"`
	Omitted     bool           `db:"is_omitted"`
	Validations []byte         `db:"validations"`
}

// PGSource reads the content model from the _models and __meta tables of a
// postgres schema kept in sync with contentful.
type PGSource struct {
	DatabaseURL    string
	SchemaName     string
	ContentTypeIDs []string

	db *sqlx.DB
}

func NewPGSource(databaseURL string, schemaName string) *PGSource {
	return &PGSource{
		DatabaseURL: databaseURL,
		SchemaName:  schemaName,
	}
}

// NewPGSourceDB uses an already opened connection, which stays open.
func NewPGSourceDB(db *sqlx.DB, schemaName string) *PGSource {
	return &PGSource{
		SchemaName: schemaName,
		db:         db,
	}
}

func (s *PGSource) ContentTypes(ctx context.Context) ([]*ContentType, error) {
	db := s.db
	if db == nil {
		var err error
		db, err = sqlx.Open("postgres", s.DatabaseURL)
		if err != nil {
			return nil, wrapKind(ErrFetch, err)
		}
		defer db.Close()
	}

	models, err := s.models(ctx, db)
	if err != nil {
		return nil, wrapKind(ErrFetch, err)
	}

	types := make([]*ContentType, 0, len(models))
	for _, m := range models {
		ct, err := s.contentType(ctx, db, m)
		if err != nil {
			return nil, wrapKind(ErrFetch, errors.WithMessagef(err, "model %s", m.Name))
		}
		types = append(types, ct)
	}

	return types, nil
}

func (s *PGSource) schema() string {
	if s.SchemaName == "" {
		return "public"
	}
	return s.SchemaName
}

func (s *PGSource) models(ctx context.Context, db *sqlx.DB) ([]*PGModelRow, error) {
	rows := make([]*PGModelRow, 0)
	if len(s.ContentTypeIDs) == 0 {
		query := fmt.Sprintf(modelsQueryFormat, pq.QuoteIdentifier(s.schema()), "")
		err := db.SelectContext(ctx, &rows, query)
		return rows, err
	}

	names := make([]string, 0, len(s.ContentTypeIDs))
	for _, id := range s.ContentTypeIDs {
		names = append(names, toSnakeCase(id))
	}
	query := fmt.Sprintf(modelsQueryFormat, pq.QuoteIdentifier(s.schema()), "\nWHERE name = ANY($1)")
	err := db.SelectContext(ctx, &rows, query, pq.Array(names))
	return rows, err
}

func (s *PGSource) contentType(ctx context.Context, db *sqlx.DB, model *PGModelRow) (*ContentType, error) {
	rows := make([]*PGMetaRow, 0)
	query := fmt.Sprintf(metaQueryFormat, pq.QuoteIdentifier(s.schema()), pq.QuoteIdentifier(model.Name+"__meta"))
	err := db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, err
	}

	ct := &ContentType{
		Sys: &Sys{
			ID:   toCamelCase(model.Name),
			Type: "ContentType",
		},
		Description: model.Description.String,
		Fields:      make([]*ContentTypeField, 0, len(rows)),
	}
	for _, row := range rows {
		field, err := row.field()
		if err != nil {
			return nil, err
		}
		ct.Fields = append(ct.Fields, field)
	}
	return ct, nil
}

func (row *PGMetaRow) field() (*ContentTypeField, error) {
	field := &ContentTypeField{
		ID:       toCamelCase(row.Name),
		Name:     row.Name,
		Type:     row.Type,
		Required: row.Required,
		Omitted:  row.Omitted,
	}

	if row.Type == string(FieldLink) {
		field.LinkType = metaLinkType(row.LinkType.String)
	}

	if len(row.Items) > 0 && string(row.Items) != "null" {
		items := &FieldTypeArrayItem{}
		err := json.Unmarshal(row.Items, items)
		if err != nil {
			return nil, errors.Wrapf(err, "items of %s", row.Name)
		}
		field.Items = items
	}

	if len(row.Validations) > 0 {
		err := json.Unmarshal(row.Validations, &field.Validations)
		if err != nil {
			return nil, errors.Wrapf(err, "validations of %s", row.Name)
		}
	}

	target := metaLinkTarget(row.LinkType.String)
	if field.LinkType == ENTRY {
		field.Validations = withLinkTarget(field.Validations, target)
	}
	if field.Items != nil && field.Items.LinkType == ENTRY {
		field.Items.Validations = withLinkTarget(field.Items.Validations, target)
	}

	return field, nil
}

// metaLinkTarget is the content type id an Entry link_type names, empty for
// assets and untargeted entries.
func metaLinkTarget(linkType string) string {
	switch linkType {
	case "", assetTableName, ASSET, ENTRY:
		return ""
	}
	return toCamelCase(linkType)
}

// withLinkTarget adds a linkContentType validation for target unless one is
// already there.
func withLinkTarget(validations []*FieldValidation, target string) []*FieldValidation {
	if target == "" {
		return validations
	}
	for _, v := range validations {
		if v != nil && v.LinkContentType != nil {
			return validations
		}
	}
	return append(validations, &FieldValidation{LinkContentType: []string{target}})
}

// metaLinkType undoes the link_type flattening of the meta tables: the asset
// table name stands for Asset links, a content type name for Entry links.
func metaLinkType(linkType string) string {
	switch linkType {
	case assetTableName, ASSET:
		return ASSET
	case "":
		return ""
	}
	return ENTRY
}
