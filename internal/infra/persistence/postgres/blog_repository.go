package postgres

import (
	"context"
	"time"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/errors"
	"academy/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultBlogListLimit = 20
	maxBlogListLimit     = 100
)

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{
		db: db,
	}
}

func (repo *blogRepository) FindByID(ctx context.Context, id uint) (*entity.Blog, error) {
	var blogM model.BlogModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&blogM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	return toBlogDomain(&blogM), nil
}

func (repo *blogRepository) FindByIDs(ctx context.Context, ids []uint) ([]*entity.Blog, error) {
	if len(ids) == 0 {
		return []*entity.Blog{}, nil
	}

	var blogModels []*model.BlogModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&blogModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find blogs by ids")
	}

	return toBlogDomains(blogModels), nil
}

func (repo *blogRepository) List(ctx context.Context, page entity.Page) ([]*entity.Blog, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.BlogModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count blogs")
	}

	var blogModels []*model.BlogModel
	if err := repo.db.WithContext(ctx).
		Order("publication_date DESC, id DESC").
		Limit(clampLimit(page.Limit, defaultBlogListLimit, maxBlogListLimit)).
		Offset(max(page.Offset, 0)).
		Find(&blogModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list blogs")
	}

	return toBlogDomains(blogModels), total, nil
}

func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	if blog.PublicationDate.IsZero() {
		blog.PublicationDate = time.Now().UTC()
	}
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WithDetails("missing required blog information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	blog.ID = blogM.ID

	return nil
}

func (repo *blogRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.BlogModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blog")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

func toBlogDomains(blogModels []*model.BlogModel) []*entity.Blog {
	blogs := make([]*entity.Blog, 0, len(blogModels))
	for _, blogM := range blogModels {
		blogs = append(blogs, toBlogDomain(blogM))
	}

	return blogs
}

func toBlogDomain(blogM *model.BlogModel) *entity.Blog {
	return &entity.Blog{
		ID:              blogM.ID,
		Title:           blogM.Title,
		AuthorName:      blogM.AuthorName,
		Email:           blogM.Email,
		URL:             blogM.URL,
		Description:     blogM.Description,
		Tags:            []entity.Tag(blogM.Tags),
		ImageURL:        blogM.ImageURL,
		ImageAlt:        blogM.ImageAlt,
		PublicationDate: blogM.PublicationDate,
	}
}

func fromBlogDomain(blog *entity.Blog) *model.BlogModel {
	tags := blog.Tags
	if tags == nil {
		tags = []entity.Tag{}
	}

	return &model.BlogModel{
		ID:              blog.ID,
		Title:           blog.Title,
		AuthorName:      blog.AuthorName,
		Email:           blog.Email,
		URL:             blog.URL,
		Description:     blog.Description,
		Tags:            datatypes.NewJSONSlice(tags),
		ImageURL:        blog.ImageURL,
		ImageAlt:        blog.ImageAlt,
		PublicationDate: blog.PublicationDate,
	}
}
