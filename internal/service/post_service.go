package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/xid"

	"goblog/internal/cache"
	"goblog/internal/config"
	"goblog/internal/models"
	"goblog/internal/repository"
	"goblog/internal/storage"
)

const searchVersionKey = "posts:version"

type CreatePostRequest struct {
	Title   string
	Content string
}

type UpdatePostRequest struct {
	Content   *string
	Published *bool
}

type PostService interface {
	CreatePost(ctx context.Context, user *models.User, req CreatePostRequest, files []*multipart.FileHeader) (*models.Post, error)
	UpdatePost(ctx context.Context, user *models.User, postID string, req UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, user *models.User, postID string) error
	ShowMyPosts(ctx context.Context, user *models.User, filter *repository.PostFilter) ([]models.Post, error)
	FindPosts(ctx context.Context, filter *repository.PostFilter) ([]models.Post, error)
	DownloadFile(ctx context.Context, fileName string) (io.ReadCloser, error)
}

type postService struct {
	postRepo  repository.PostRepository
	imageRepo repository.ImageRepository
	storage   storage.Storage
	cache     *cache.Cache
	cfg       *config.Config
}

func NewPostService(postRepo repository.PostRepository, imageRepo repository.ImageRepository, storage storage.Storage, cache *cache.Cache, cfg *config.Config) PostService {
	return &postService{
		postRepo:  postRepo,
		imageRepo: imageRepo,
		storage:   storage,
		cache:     cache,
		cfg:       cfg,
	}
}

// CreatePost — двухфазная операция: вставка поста, затем сохранение и
// индексация файлов. Файлы лежат вне транзакции БД, поэтому при любой
// ошибке второй фазы пост удаляется компенсирующим действием и наружу
// уходит исходная ошибка. Осиротевший пост не переживает неудачную загрузку.
func (p *postService) CreatePost(ctx context.Context, user *models.User, req CreatePostRequest, files []*multipart.FileHeader) (*models.Post, error) {
	exists, err := p.postRepo.ExistsByTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", req.Title, models.ErrTitleTaken)
	}

	post := &models.Post{
		Title:     req.Title,
		Content:   req.Content,
		CreatedBy: user.ID,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	if len(files) > 0 {
		images, err := p.attachFiles(ctx, post.ID, files)
		if err != nil {
			if delErr := p.postRepo.Delete(ctx, post.ID, user.ID); delErr != nil {
				log.Printf("Внимание: не удалось откатить пост %s: %v", post.ID, delErr)
			}
			return nil, err
		}
		post.Images = images
	}

	p.invalidateSearch(ctx)

	post.Username = user.Username
	return post, nil
}

// attachFiles сохраняет файлы в хранилище и индексирует их строками images.
// Ошибка на любом шаге удаляет уже сохранённые объекты; строки индекса
// снимает компенсирующее удаление поста.
func (p *postService) attachFiles(ctx context.Context, postID string, files []*multipart.FileHeader) ([]models.Image, error) {
	var stored []models.Image

	cleanup := func() {
		for _, image := range stored {
			if err := p.storage.Delete(ctx, image.Filename); err != nil {
				log.Printf("Внимание: не удалось удалить файл %s: %v", image.Filename, err)
			}
		}
	}

	for _, fileHeader := range files {
		image, err := p.storeFile(ctx, fileHeader)
		if err != nil {
			cleanup()
			return nil, err
		}
		stored = append(stored, image)
	}

	for i := range stored {
		stored[i].PostID = postID
		if err := p.imageRepo.Create(ctx, &stored[i]); err != nil {
			cleanup()
			return nil, err
		}
	}

	return stored, nil
}

func (p *postService) storeFile(ctx context.Context, fileHeader *multipart.FileHeader) (models.Image, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return models.Image{}, fmt.Errorf("%w: %w", models.ErrUploadFailed, err)
	}
	defer file.Close()

	if err := validateSize(file, p.cfg.MaxUploadSize); err != nil {
		return models.Image{}, err
	}

	contentType, err := detectContentType(file)
	if err != nil {
		return models.Image{}, err
	}

	// устойчивое к коллизиям имя, исходное расширение сохраняется
	name := xid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))

	if err := p.storage.Save(ctx, name, contentType, file, fileHeader.Size); err != nil {
		return models.Image{}, err
	}

	return models.Image{
		Location:    p.cfg.Media.BaseURL + "/" + name + "/",
		Filename:    name,
		Size:        fileHeader.Size,
		ContentType: contentType,
	}, nil
}

// validateSize считает байты потоково и падает сразу при превышении лимита,
// не буферизуя файл целиком.
func validateSize(file multipart.File, maxBytes int64) error {
	buf := make([]byte, 32*1024)
	var total int64

	for {
		n, err := file.Read(buf)
		total += int64(n)
		if total > maxBytes {
			return fmt.Errorf("%w (макс. %d байт)", models.ErrFileTooLarge, maxBytes)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %w", models.ErrUploadFailed, err)
		}
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w", models.ErrUploadFailed, err)
	}

	return nil
}

func detectContentType(file multipart.File) (string, error) {
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrUploadFailed, err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrUploadFailed, err)
	}

	return mtype.String(), nil
}

func (p *postService) UpdatePost(ctx context.Context, user *models.User, postID string, req UpdatePostRequest) (*models.Post, error) {
	post, err := p.postRepo.GetOwnByID(ctx, postID, user.ID)
	if err != nil {
		return nil, err
	}

	// применяем только переданные поля
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Published != nil {
		post.Published = *req.Published
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	images, err := p.imageRepo.GetByPostID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	post.Images = images
	post.Username = user.Username

	p.invalidateSearch(ctx)

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, user *models.User, postID string) error {
	post, err := p.postRepo.GetOwnByID(ctx, postID, user.ID)
	if err != nil {
		return err
	}

	images, err := p.imageRepo.GetByPostID(ctx, post.ID)
	if err != nil {
		return err
	}

	if err := p.postRepo.Delete(ctx, post.ID, user.ID); err != nil {
		return err
	}

	// строки удалены, файлы чистим по возможности
	for _, image := range images {
		if err := p.storage.Delete(ctx, image.Filename); err != nil {
			log.Printf("Внимание: не удалось удалить файл %s: %v", image.Filename, err)
		}
	}

	p.invalidateSearch(ctx)

	return nil
}

func (p *postService) ShowMyPosts(ctx context.Context, user *models.User, filter *repository.PostFilter) ([]models.Post, error) {
	posts, err := p.postRepo.GetByUser(ctx, user.ID, filter)
	if err != nil {
		return nil, err
	}

	if len(posts) == 0 {
		return nil, models.ErrNoPosts
	}

	for i := range posts {
		posts[i].Username = user.Username
		if posts[i].Images, err = p.imageRepo.GetByPostID(ctx, posts[i].ID); err != nil {
			return nil, err
		}
	}

	return posts, nil
}

func (p *postService) FindPosts(ctx context.Context, filter *repository.PostFilter) ([]models.Post, error) {
	key := fmt.Sprintf("posts:find:%d:%s", p.cache.GetInt(ctx, searchVersionKey), filter.CacheKey())

	if b, ok := p.cache.Get(ctx, key); ok {
		var posts []models.Post
		if err := json.Unmarshal(b, &posts); err == nil {
			return posts, nil
		}
	}

	posts, err := p.postRepo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(posts) == 0 {
		return nil, models.ErrPostsNotFound
	}

	for i := range posts {
		if posts[i].Images, err = p.imageRepo.GetByPostID(ctx, posts[i].ID); err != nil {
			return nil, err
		}
	}

	if b, err := json.Marshal(posts); err == nil {
		p.cache.Set(ctx, key, b)
	}

	return posts, nil
}

func (p *postService) DownloadFile(ctx context.Context, fileName string) (io.ReadCloser, error) {
	// имя не должно выводить за пределы медиа-каталога
	if fileName == "" || fileName != filepath.Base(fileName) || strings.HasPrefix(fileName, ".") {
		return nil, fmt.Errorf("%s: %w", fileName, models.ErrFileNotFound)
	}

	return p.storage.Open(ctx, fileName)
}

func (p *postService) invalidateSearch(ctx context.Context) {
	p.cache.Incr(ctx, searchVersionKey)
}
