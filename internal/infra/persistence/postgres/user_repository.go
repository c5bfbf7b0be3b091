// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"time"

	"backstage/internal/domain/entity"
	domainerrors "backstage/internal/domain/errors"
	"backstage/internal/domain/repository"
	"backstage/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user with roles preloaded. The stored
// password hash is stripped before the entity leaves the repository.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	userM, err := repo.findOne(ctx, "id = ?", id)
	if err != nil {
		return nil, err
	}

	user := toUserDomain(userM)
	user.PasswordHash = ""

	return user, nil
}

// FindForAuthByUsername retrieves a user with roles and the password hash.
func (repo *userRepository) FindForAuthByUsername(ctx context.Context, username string) (*entity.User, error) {
	userM, err := repo.findOne(ctx, "username = ?", username)
	if err != nil {
		return nil, err
	}

	return toUserDomain(userM), nil
}

// FindForAuthByID retrieves a user with roles and the password hash.
func (repo *userRepository) FindForAuthByID(ctx context.Context, id int64) (*entity.User, error) {
	userM, err := repo.findOne(ctx, "id = ?", id)
	if err != nil {
		return nil, err
	}

	return toUserDomain(userM), nil
}

func (repo *userRepository) findOne(ctx context.Context, cond string, arg any) (*model.UserModel, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("Roles").
		Where(cond, arg).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return &userM, nil
}

// ExistsByEmailOrUsername reports whether any user, soft-deleted ones
// included, already claims the email or username.
func (repo *userRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Unscoped().
		Model(&model.UserModel{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check user existence")
	}

	return count > 0, nil
}

// Create persists a new user together with its role memberships. Role rows
// themselves are never written from here, only the join table.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit("Roles.*").Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email or username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRoleNotFound.WrapMessage("referenced role does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies the user's base fields and, when roles is non-nil,
// replaces the role memberships in the same transaction.
func (repo *userRepository) Update(ctx context.Context, user *entity.User, roles []entity.Role) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"email":     user.Email,
			"username":  user.Username,
			"is_active": user.Active,
		}

		result := tx.Model(&model.UserModel{}).Where("id = ?", user.ID).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrUserNotFound
		}

		if roles != nil {
			roleModels := make([]model.RoleModel, 0, len(roles))
			for _, role := range roles {
				roleModels = append(roleModels, model.RoleModel{ID: role.ID})
			}

			userM := model.UserModel{ID: user.ID}
			if err := tx.Model(&userM).Association("Roles").Replace(roleModels); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.ErrUserNotFound
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email or username already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return nil
}

// UpdatePassword replaces the stored password hash.
func (repo *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List returns a page of users and the total match count.
func (repo *userRepository) List(ctx context.Context, query repository.ListUsersQuery) ([]*entity.User, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.UserModel{})

	switch {
	case query.OnlyDeleted:
		tx = tx.Unscoped().Where("deleted_at IS NOT NULL")
	case query.WithDeleted:
		tx = tx.Unscoped()
	}

	if query.Search != "" {
		tx = tx.Where("email LIKE ?", "%"+query.Search+"%")
	}
	if len(query.InIDs) > 0 {
		tx = tx.Where("id IN ?", query.InIDs)
	}
	if len(query.NotInIDs) > 0 {
		tx = tx.Where("id NOT IN ?", query.NotInIDs)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	var userModels []model.UserModel
	err := tx.
		Order(orderClause(query.OrderBy, query.Order)).
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Preload("Roles").
		Find(&userModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		user := toUserDomain(&userModels[i])
		user.PasswordHash = ""
		users = append(users, user)
	}

	return users, total, nil
}

// SoftDelete marks users as deleted without removing rows.
func (repo *userRepository) SoftDelete(ctx context.Context, ids []int64) (int64, error) {
	result := repo.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.UserModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to soft-delete users")
	}

	return result.RowsAffected, nil
}

// Restore clears the soft-delete marker.
func (repo *userRepository) Restore(ctx context.Context, ids []int64) (int64, error) {
	result := repo.db.WithContext(ctx).
		Unscoped().
		Model(&model.UserModel{}).
		Where("id IN ? AND deleted_at IS NOT NULL", ids).
		Update("deleted_at", nil)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to restore users")
	}

	return result.RowsAffected, nil
}

// Delete removes users permanently, join rows first.
func (repo *userRepository) Delete(ctx context.Context, ids []int64) (int64, error) {
	var affected int64

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM user_role WHERE user_id IN ?", ids).Error; err != nil {
			return err
		}

		result := tx.Unscoped().Where("id IN ?", ids).Delete(&model.UserModel{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected

		return nil
	})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete users")
	}

	return affected, nil
}

func orderClause(field repository.SortField, order repository.SortOrder) string {
	if field == "" {
		field = repository.OrderByID
	}
	if order != repository.OrderAsc && order != repository.OrderDesc {
		order = repository.OrderDesc
	}

	return fmt.Sprintf("%s %s", field, order)
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	roles := make([]entity.Role, 0, len(data.Roles))
	for i := range data.Roles {
		roles = append(roles, *toRoleDomain(&data.Roles[i]))
	}

	var deletedAt *time.Time
	if data.DeletedAt.Valid {
		t := data.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Active:       data.IsActive,
		Roles:        roles,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	roles := make([]model.RoleModel, 0, len(data.Roles))
	for _, role := range data.Roles {
		roles = append(roles, model.RoleModel{ID: role.ID})
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		IsActive:     data.Active,
		Roles:        roles,
	}
}
