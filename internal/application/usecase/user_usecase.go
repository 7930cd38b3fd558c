package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

var validRoles = map[string]bool{
	entity.RoleAdmin:    true,
	entity.RoleManager:  true,
	entity.RoleMechanic: true,
}

// UserUseCase casos de uso CRUD de usuarios (administración; el registro
// público vive en application/auth).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario con password hasheado (bcrypt).
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	v := domain.NewValidation()
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		v.Add("email", "es requerido y debe ser válido")
	}
	if len(in.Password) < 6 {
		v.Add("password", "mínimo 6 caracteres")
	}
	if in.Role != "" && !validRoles[in.Role] {
		v.Add("role", "debe ser admin, manager o mechanic")
	}
	if v.HasErrors() {
		return nil, v
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleMechanic
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return ToUserResponse(u), nil
}

// Update aplica una actualización parcial; si viene password se vuelve a hashear.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	v := domain.NewValidation()
	if in.Email != nil && !strings.Contains(*in.Email, "@") {
		v.Add("email", "formato inválido")
	}
	if in.Password != nil && len(*in.Password) < 6 {
		v.Add("password", "mínimo 6 caracteres")
	}
	if in.Role != nil && !validRoles[*in.Role] {
		v.Add("role", "debe ser admin, manager o mechanic")
	}
	if in.Status != nil && *in.Status != "active" && *in.Status != "inactive" {
		v.Add("status", "debe ser active o inactive")
	}
	if v.HasErrors() {
		return nil, v
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Status != nil {
		u.Status = *in.Status
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

// List lista usuarios, más recientes primero.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUserResponse(u))
	}
	return items, nil
}

// Delete elimina un usuario. Devuelve ErrNotFound si no existía.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	existed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrNotFound
	}
	return nil
}

// ToUserResponse convierte la entidad a DTO de salida (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
