package inmemdb

import (
	"context"

	"github.com/Radiyassin/login-campus-connect/core"
	"github.com/Radiyassin/login-campus-connect/core/project"
)

type boardRepository struct {
	db *DB
}

var _ project.Repository = (*boardRepository)(nil)

func NewBoardRepository(db *DB) project.Repository {
	return &boardRepository{db: db}
}

func boardKey(role, owner string) string {
	return role + ":" + core.CleanString(owner, true /* lower */)
}

func (repo *boardRepository) StudentBoard(_ context.Context, owner string) (*project.StudentStore, error) {
	v := repo.db.getOrAdd(boardKey(core.RoleStudent, owner), func() interface{} {
		return project.NewStudentStore(project.SeedStudent())
	})
	return v.(*project.StudentStore), nil
}

func (repo *boardRepository) ProfessorBoard(_ context.Context, owner string) (*project.ProfessorStore, error) {
	v := repo.db.getOrAdd(boardKey(core.RoleProfessor, owner), func() interface{} {
		return project.NewProfessorStore(project.SeedProfessor())
	})
	return v.(*project.ProfessorStore), nil
}

func (repo *boardRepository) DropBoards(_ context.Context, owner string) error {
	for _, role := range core.Roles {
		repo.db.boards.Delete(boardKey(role, owner))
	}
	return nil
}
