package store

import (
	"fmt"
	"strings"

	"github.com/plateful-app/plateful-cli/internal/model"
)

func (s *Store) Folders() []model.Folder {
	return s.state.Folders
}

func (s *Store) FolderByID(id string) (model.Folder, bool) {
	for _, f := range s.state.Folders {
		if f.ID == id {
			return f, true
		}
	}
	return model.Folder{}, false
}

func (s *Store) AddFolder(f model.Folder) error {
	if err := s.validateFolder(f); err != nil {
		return err
	}
	s.state.Folders = append(s.state.Folders, f)
	return s.save()
}

func (s *Store) UpdateFolder(f model.Folder) error {
	if err := s.validateFolder(f); err != nil {
		return err
	}
	for i := range s.state.Folders {
		if s.state.Folders[i].ID == f.ID {
			s.state.Folders[i] = f
			return s.save()
		}
	}
	return fmt.Errorf("folder %s not found", f.ID)
}

// DeleteFolder removes the folder, clears FolderID on recipes that
// referenced it, and reparents child folders to the root. Recipes are
// never cascade-deleted.
func (s *Store) DeleteFolder(id string) error {
	idx := -1
	for i := range s.state.Folders {
		if s.state.Folders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("folder %s not found", id)
	}
	s.state.Folders = append(s.state.Folders[:idx], s.state.Folders[idx+1:]...)
	for i := range s.state.Recipes {
		if s.state.Recipes[i].FolderID == id {
			s.state.Recipes[i].FolderID = ""
		}
	}
	for i := range s.state.Folders {
		if s.state.Folders[i].ParentID == id {
			s.state.Folders[i].ParentID = ""
		}
	}
	return s.save()
}

// MoveRecipeToFolder re-homes a recipe; folderID "" means unfiled.
func (s *Store) MoveRecipeToFolder(recipeID, folderID string) error {
	if folderID != "" {
		if _, ok := s.FolderByID(folderID); !ok {
			return fmt.Errorf("folder %s not found", folderID)
		}
	}
	for i := range s.state.Recipes {
		if s.state.Recipes[i].ID == recipeID {
			s.state.Recipes[i].FolderID = folderID
			return s.save()
		}
	}
	return fmt.Errorf("recipe %s not found", recipeID)
}

func (s *Store) validateFolder(f model.Folder) error {
	if f.ID == "" {
		return fmt.Errorf("folder id is required")
	}
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("folder name is required")
	}
	if f.ParentID != "" {
		if f.ParentID == f.ID {
			return fmt.Errorf("folder cannot be its own parent")
		}
		if _, ok := s.FolderByID(f.ParentID); !ok {
			return fmt.Errorf("parent folder %s not found", f.ParentID)
		}
		if s.isAncestor(f.ID, f.ParentID) {
			return fmt.Errorf("folder %s is an ancestor of %s; refusing to create a cycle", f.ID, f.ParentID)
		}
	}
	return nil
}

// isAncestor reports whether candidate appears on the parent chain
// above folderID.
func (s *Store) isAncestor(candidate, folderID string) bool {
	seen := make(map[string]bool)
	current := folderID
	for current != "" && !seen[current] {
		seen[current] = true
		if current == candidate {
			return true
		}
		f, ok := s.FolderByID(current)
		if !ok {
			return false
		}
		current = f.ParentID
	}
	return false
}
