package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"mix-store/internal/catalog"
	"mix-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProductService(repo *MockProductRepository, assistant *MockAssistant, now time.Time) *productService {
	svc := NewProductService(repo, assistant, zerolog.Nop()).(*productService)
	svc.now = fixedClock(now)
	return svc
}

func TestProductService_List(t *testing.T) {
	tests := []struct {
		name     string
		query    catalog.Query
		expected []string
	}{
		{name: "All unsorted", query: catalog.Query{Category: "All", Sort: catalog.SortNone}, expected: []string{"p1", "p2", "p3"}},
		{name: "All ascending", query: catalog.Query{Category: "All", Sort: catalog.SortAsc}, expected: []string{"p2", "p3", "p1"}},
		{name: "Category descending", query: catalog.Query{Category: "Skincare", Sort: catalog.SortDesc}, expected: []string{"p3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProductRepository)
			repo.On("GetAll", mock.Anything).Return(testCatalogue(), nil)

			svc := NewProductService(repo, new(MockAssistant), zerolog.Nop())
			products, err := svc.List(context.Background(), tt.query)

			require.NoError(t, err)
			ids := make([]string, len(products))
			for i, p := range products {
				ids[i] = p.ID
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestProductService_List_RepositoryError(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("GetAll", mock.Anything).Return(nil, errors.New("redis down"))

	_, err := NewProductService(repo, new(MockAssistant), zerolog.Nop()).List(context.Background(), catalog.Query{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list products")
}

func TestProductService_Categories(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("GetAll", mock.Anything).Return(testCatalogue(), nil)

	categories, err := NewProductService(repo, new(MockAssistant), zerolog.Nop()).Categories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Running", "Haircare", "Skincare"}, categories)
}

func TestProductService_Featured(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		products := []model.Product{
			{ID: "p1", Featured: true},
			{ID: "p2"},
			{ID: "p3", Featured: true},
			{ID: "p4", Featured: true},
			{ID: "p5", Featured: true},
		}
		repo := new(MockProductRepository)
		repo.On("GetAll", mock.Anything).Return(products, nil)

		featured, err := NewProductService(repo, new(MockAssistant), zerolog.Nop()).Featured(context.Background())

		require.NoError(t, err)
		require.Len(t, featured, 3)
		assert.Equal(t, "p1", featured[0].ID)
		assert.Equal(t, "p3", featured[1].ID)
		assert.Equal(t, "p4", featured[2].ID)
	})

	t.Run("Repository error", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("GetAll", mock.Anything).Return(nil, errors.New("redis down"))

		_, err := NewProductService(repo, new(MockAssistant), zerolog.Nop()).Featured(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list featured products")
	})
}

func TestProductService_GetByID(t *testing.T) {
	repo := new(MockProductRepository)
	product := testCatalogue()[0]
	repo.On("GetByID", mock.Anything, "p1").Return(&product, nil)
	repo.On("GetByID", mock.Anything, "p99").Return(nil, nil)

	svc := NewProductService(repo, new(MockAssistant), zerolog.Nop())

	got, err := svc.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Air Velocity Nitro", got.Name)

	_, err = svc.GetByID(context.Background(), "p99")
	assert.Equal(t, model.ErrProductNotFound, err)
}

func TestProductService_Create(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	stock := 3

	tests := []struct {
		name      string
		req       *model.ProductRequest
		expectErr error
		check     func(t *testing.T, p *model.Product)
	}{
		{
			name: "Defaults applied",
			req:  &model.ProductRequest{Name: "Linen Tote", Price: 29},
			check: func(t *testing.T, p *model.Product) {
				assert.Equal(t, "p1700000000000", p.ID)
				assert.Equal(t, "Generic", p.Brand)
				assert.Equal(t, "Lifestyle", p.Category)
				assert.Equal(t, "No description", p.Description)
				assert.Equal(t, 10, p.Stock)
				assert.Equal(t, []int{8, 9, 10, 11}, p.Sizes)
				assert.Equal(t, []string{"https://picsum.photos/800/800?random=1700000000000"}, p.Images)
				assert.False(t, p.Featured)
			},
		},
		{
			name: "Provided values kept",
			req: &model.ProductRequest{
				Name: "Glow Balm", Brand: "Mix", Price: 22.5, Category: "Skincare",
				Description: "Soft.", Sizes: []int{1}, Stock: &stock, Images: []string{"a.jpg"},
			},
			check: func(t *testing.T, p *model.Product) {
				assert.Equal(t, "Mix", p.Brand)
				assert.Equal(t, "Skincare", p.Category)
				assert.Equal(t, "Soft.", p.Description)
				assert.Equal(t, 3, p.Stock)
				assert.Equal(t, []int{1}, p.Sizes)
				assert.Equal(t, []string{"a.jpg"}, p.Images)
			},
		},
		{name: "Missing name", req: &model.ProductRequest{Name: "  ", Price: 10}, expectErr: model.MissingFieldError("name")},
		{name: "Zero price", req: &model.ProductRequest{Name: "Free", Price: 0}, expectErr: model.ErrInvalidPrice},
		{name: "Negative price", req: &model.ProductRequest{Name: "Neg", Price: -5}, expectErr: model.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProductRepository)
			if tt.expectErr == nil {
				repo.On("Save", mock.Anything, mock.AnythingOfType("model.Product")).Return(true, nil)
			}

			product, err := newTestProductService(repo, new(MockAssistant), now).Create(context.Background(), tt.req)

			if tt.expectErr != nil {
				assert.Equal(t, tt.expectErr, err)
				repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			tt.check(t, product)
			repo.AssertExpectations(t)
		})
	}
}

func TestProductService_Replace(t *testing.T) {
	repo := new(MockProductRepository)
	existing := testCatalogue()[1]
	existing.Images = []string{"mask.jpg"}
	repo.On("GetByID", mock.Anything, "p2").Return(&existing, nil)
	repo.On("GetByID", mock.Anything, "p99").Return(nil, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == "p2" && p.Name == "Bond Mask" && p.Stock == 40 && p.Images[0] == "mask.jpg"
	})).Return(false, nil)

	svc := newTestProductService(repo, new(MockAssistant), time.Now())

	product, err := svc.Replace(context.Background(), "p2", &model.ProductRequest{Name: "Bond Mask", Brand: "Olaplex", Price: 48})
	require.NoError(t, err)
	assert.Equal(t, 48.0, product.Price)
	repo.AssertExpectations(t)

	_, err = svc.Replace(context.Background(), "p99", &model.ProductRequest{Name: "Ghost", Price: 1})
	assert.Equal(t, model.ErrProductNotFound, err)
}

func TestProductService_Delete(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("Delete", mock.Anything, "p1").Return(true, nil)
	repo.On("Delete", mock.Anything, "p99").Return(false, nil)
	repo.On("Delete", mock.Anything, "boom").Return(false, errors.New("redis down"))

	svc := NewProductService(repo, new(MockAssistant), zerolog.Nop())

	assert.NoError(t, svc.Delete(context.Background(), "p1"))
	assert.Equal(t, model.ErrProductNotFound, svc.Delete(context.Background(), "p99"))

	err := svc.Delete(context.Background(), "boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete product")
}

func TestProductService_GenerateDescription(t *testing.T) {
	tests := []struct {
		name      string
		req       *model.DescriptionRequest
		expectErr error
	}{
		{name: "Success", req: &model.DescriptionRequest{Name: "Serum", Brand: "Mix", Keywords: "glow"}},
		{name: "Missing name", req: &model.DescriptionRequest{Brand: "Mix"}, expectErr: model.MissingFieldError("name")},
		{name: "Missing brand", req: &model.DescriptionRequest{Name: "Serum"}, expectErr: model.MissingFieldError("brand")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assistant := new(MockAssistant)
			assistant.On("GenerateDescription", mock.Anything, "Serum", "Mix", "glow").Return("Radiant skin.")

			resp, err := NewProductService(new(MockProductRepository), assistant, zerolog.Nop()).
				GenerateDescription(context.Background(), tt.req)

			if tt.expectErr != nil {
				assert.Equal(t, tt.expectErr, err)
				assistant.AssertNotCalled(t, "GenerateDescription", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Radiant skin.", resp.Description)
		})
	}
}
