package queries

import (
	"context"
	"fmt"
	"strings"

	"parcelcarrier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUsersQueryHandler retrieves account pages from the database.
// The password hash column is deliberately never selected.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for account listing queries.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

// Handle executes the listing query.
// Returns the requested page sorted by login together with the total number
// of rows matching the filter.
func (h GetUsersQueryHandler) Handle(ctx context.Context, query GetUsersQuery) (GetUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUsersQueryResponse{}, err
	}

	where, args := buildUserFilter(query.Filter())

	var total int64
	countSQL := "SELECT COUNT(*) FROM accounts" + where
	if err := h.db.WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return GetUsersQueryResponse{}, err
	}

	pageSQL := fmt.Sprintf(`
		SELECT
			id,
			login,
			role,
			specialty,
			availability,
			active,
			created_at,
			updated_at
		FROM accounts
		%s
		ORDER BY login
		LIMIT %d OFFSET %d
	`, where, query.Size(), query.Page()*query.Size())

	rows, err := h.db.WithContext(ctx).Raw(pageSQL, args...).Rows()
	if err != nil {
		return GetUsersQueryResponse{}, err
	}
	defer rows.Close()

	users := make([]UserReadModel, 0, query.Size())
	for rows.Next() {
		var user UserReadModel
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&user.Login,
			&user.Role,
			&user.Specialty,
			&user.Availability,
			&user.Active,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return GetUsersQueryResponse{}, err
		}

		accountID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetUsersQueryResponse{}, idErr
		}
		user.ID = accountID

		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return GetUsersQueryResponse{}, err
	}

	return GetUsersQueryResponse{
		Items: users,
		Total: total,
		Page:  query.Page(),
		Size:  query.Size(),
	}, nil
}

func buildUserFilter(filter UserFilter) (string, []any) {
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if filter.Role != nil {
		conditions = append(conditions, "role = ?")
		args = append(args, filter.Role.String())
	}

	if filter.Specialty != nil {
		conditions = append(conditions, "specialty = ?")
		args = append(args, filter.Specialty.String())
	}

	if filter.Availability != nil {
		conditions = append(conditions, "availability = ?")
		args = append(args, filter.Availability.String())
	}

	if filter.Active != nil {
		conditions = append(conditions, "active = ?")
		args = append(args, *filter.Active)
	}

	if len(conditions) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}
