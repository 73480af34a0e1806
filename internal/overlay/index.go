// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package overlay

import (
	"github.com/hashicorp/go-memdb"
)

const (
	filesTableName       = "files"
	directoriesTableName = "directories"
)

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		filesTableName: {
			Name: filesTableName,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Path"},
				},
			},
		},
		directoriesTableName: {
			Name: directoriesTableName,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Path"},
				},
			},
		},
	},
}

type pathEntry struct {
	Path string
}

func insertPath(txn *memdb.Txn, table, path string) error {
	return txn.Insert(table, &pathEntry{Path: path})
}

func hasPath(db *memdb.MemDB, table, path string) (bool, error) {
	txn := db.Txn(false)
	obj, err := txn.First(table, "id", path)
	if err != nil {
		return false, err
	}
	return obj != nil, nil
}

func listPaths(db *memdb.MemDB, table string) ([]string, error) {
	txn := db.Txn(false)
	it, err := txn.Get(table, "id")
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		paths = append(paths, obj.(*pathEntry).Path)
	}
	return paths, nil
}
