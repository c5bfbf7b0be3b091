package postgres

import (
	"context"

	"backstage/internal/domain/entity"
	domainerrors "backstage/internal/domain/errors"
	"backstage/internal/domain/repository"
	"backstage/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roleRepository implements the repository.RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// FindByID retrieves a single role by id.
func (repo *roleRepository) FindByID(ctx context.Context, id int64) (*entity.Role, error) {
	var roleM model.RoleModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&roleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by id")
	}

	return toRoleDomain(&roleM), nil
}

// FindByCode retrieves a single role by its normalized code.
func (repo *roleRepository) FindByCode(ctx context.Context, code string) (*entity.Role, error) {
	var roleM model.RoleModel

	err := repo.db.WithContext(ctx).Where("code = ?", code).First(&roleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by code")
	}

	return toRoleDomain(&roleM), nil
}

// FindByIDs retrieves all roles whose id is in ids. Missing ids are simply
// absent from the result.
func (repo *roleRepository) FindByIDs(ctx context.Context, ids []int64) ([]entity.Role, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var roleModels []model.RoleModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find roles by ids")
	}

	roles := make([]entity.Role, 0, len(roleModels))
	for i := range roleModels {
		roles = append(roles, *toRoleDomain(&roleModels[i]))
	}

	return roles, nil
}

// Create persists a new role.
func (repo *roleRepository) Create(ctx context.Context, role *entity.Role) error {
	roleM := fromRoleDomain(role)

	if err := repo.db.WithContext(ctx).Create(roleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRoleCodeTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create role")
	}

	role.ID = roleM.ID
	role.CreatedAt = roleM.CreatedAt
	role.UpdatedAt = roleM.UpdatedAt

	return nil
}

// Update modifies an existing role.
func (repo *roleRepository) Update(ctx context.Context, role *entity.Role) error {
	updates := map[string]any{
		"code":        role.Code,
		"description": role.Description,
		"permissions": model.PermissionList(role.Permissions.ToStrings()),
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RoleModel{}).
		Where("id = ?", role.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrRoleCodeTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoleNotFound
	}

	return nil
}

// Delete hard-deletes a role and clears memberships referencing it within
// one transaction.
func (repo *roleRepository) Delete(ctx context.Context, id int64) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM user_role WHERE role_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.RoleModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrRoleNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return repository.ErrRoleNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete role")
	}

	return nil
}

// List returns a page of roles and the total match count.
func (repo *roleRepository) List(ctx context.Context, query repository.ListRolesQuery) ([]*entity.Role, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.RoleModel{})

	if query.Search != "" {
		tx = tx.Where("code LIKE ?", "%"+query.Search+"%")
	}
	if len(query.InIDs) > 0 {
		tx = tx.Where("id IN ?", query.InIDs)
	}
	if len(query.NotInIDs) > 0 {
		tx = tx.Where("id NOT IN ?", query.NotInIDs)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count roles")
	}

	var roleModels []model.RoleModel
	err := tx.
		Order(orderClause(query.OrderBy, query.Order)).
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&roleModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for i := range roleModels {
		roles = append(roles, toRoleDomain(&roleModels[i]))
	}

	return roles, total, nil
}

// --- Mapper Functions ---

// toRoleDomain converts a GORM RoleModel to a domain Role entity. Unknown
// permission codes in storage are dropped on the way out.
func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	return &entity.Role{
		ID:          data.ID,
		Code:        data.Code,
		Description: data.Description,
		Permissions: entity.PermissionsFromStrings(data.Permissions),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromRoleDomain converts a domain Role entity to a GORM RoleModel.
func fromRoleDomain(data *entity.Role) *model.RoleModel {
	if data == nil {
		return nil
	}

	return &model.RoleModel{
		ID:          data.ID,
		Code:        data.Code,
		Description: data.Description,
		Permissions: model.PermissionList(data.Permissions.ToStrings()),
	}
}
