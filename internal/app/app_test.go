package app_test

import (
	"errors"
	"testing"

	"github.com/asset-bender/bender/internal/app"
	"github.com/asset-bender/bender/internal/core/domain"
	"github.com/asset-bender/bender/internal/core/ports/mocks"
	"github.com/asset-bender/bender/internal/engine/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *domain.ProjectConfig {
	return &domain.ProjectConfig{
		Settings: domain.Settings{
			CDNDomain:     "cdn.example.com",
			StorageDomain: "example-static.s3.amazonaws.com",
			DaemonDomain:  "localhost:3333",
		},
		Manifest: domain.AssetManifest{
			Project: domain.NewInternedName("shop"),
			Bundles: []domain.BundleDecl{
				{Path: "shop/static/js/app.js", Kind: domain.KindScript},
				{Path: "shop/static/css/all.css", Kind: domain.KindStylesheet},
			},
		},
		Build: "3",
		Deps: []domain.DependencyEntry{
			{Project: domain.NewInternedName("cart"), Version: "7", Parent: domain.NewInternedName("shop")},
		},
	}
}

func newTestApp(t *testing.T, ctrl *gomock.Controller, cfg *domain.ProjectConfig) *app.App {
	t.Helper()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(".").Return(cfg, nil).Times(1)

	mockLog := mocks.NewMockLogger(ctrl)
	mockLog.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLog.EXPECT().Warn(gomock.Any()).AnyTimes()

	store := resolver.NewStore(mockLoader, mockLog)
	return app.New(store, resolver.NewResolver(), mockLog)
}

func TestApp_ResolveAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, ctrl, testConfig())

	scaffold, err := a.ResolveAll([]string{
		"shop/static/js/app.js",
		"cart/static/js/widget.js",
	}, domain.Overrides{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://cdn.example.com/shop/3/static/js/app.js",
		"https://cdn.example.com/cart/7/static/js/widget.js",
	}, scaffold.Scripts)

	// The loader is hit exactly once per process lifetime (Times(1) above),
	// no matter how many resolutions run.
	_, err = a.ResolveAll([]string{"shop/static/js/app.js"}, domain.Overrides{})
	require.NoError(t, err)
}

func TestApp_ResolveOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, ctrl, testConfig())

	url, err := a.ResolveOne("cart/static/js/widget.js", domain.Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/cart/7/static/js/widget.js", url)
}

func TestApp_ResolveOne_InvalidReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, ctrl, testConfig())

	_, err := a.ResolveOne("nope", domain.Overrides{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidReference))
}

func TestApp_Scaffold_DefaultBundles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, ctrl, testConfig())

	scaffold, err := a.Scaffold([]string{"cart/static/js/widget.js"}, domain.Overrides{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://cdn.example.com/shop/3/static/js/app.js",
		"https://cdn.example.com/cart/7/static/js/widget.js",
	}, scaffold.Scripts)
	assert.Equal(t, []string{
		"https://cdn.example.com/shop/3/static/css/all.css",
	}, scaffold.Stylesheets)
}

func TestApp_ContextValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, ctrl, testConfig())

	values, err := a.ContextValues(nil, domain.Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "cdn.example.com", values[app.DomainContextKey])
	assert.Equal(t, "//cdn.example.com", values[app.PrefixedDomainContextKey])
	assert.Equal(t, "shop", values[app.HostProjectContextKey])
	assert.Equal(t, "3", values[app.VersionContextKey])

	scaffold, ok := values[app.ScaffoldContextKey].(*domain.Scaffold)
	require.True(t, ok)
	assert.NotEmpty(t, scaffold.Scripts)
}

func TestApp_ContextValues_DevDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, ctrl, testConfig())

	values, err := a.ContextValues(nil, domain.Overrides{Dev: true})
	require.NoError(t, err)
	assert.Equal(t, "localhost:3333", values[app.DomainContextKey])
	assert.Equal(t, "//localhost:3333", values[app.PrefixedDomainContextKey])
}

func TestApp_URLPrefixes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, ctrl, testConfig())

	prefixes, err := a.URLPrefixes(domain.Overrides{})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"shop": "/shop/3",
		"cart": "/cart/7",
	}, prefixes)
}

func TestApp_LoadErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	loadErr := errors.New("settings unreadable")
	mockLoader.EXPECT().Load(".").Return(nil, loadErr).AnyTimes()

	mockLog := mocks.NewMockLogger(ctrl)
	mockLog.EXPECT().Warn(gomock.Any()).AnyTimes()

	store := resolver.NewStore(mockLoader, mockLog)
	a := app.New(store, resolver.NewResolver(), mockLog)

	_, err := a.ResolveAll([]string{"shop/static/js/app.js"}, domain.Overrides{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, loadErr))
}

func TestApp_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := testConfig()
	second := testConfig()
	second.Build = "4"

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	gomock.InOrder(
		mockLoader.EXPECT().Load(".").Return(first, nil),
		mockLoader.EXPECT().Load(".").Return(second, nil),
	)

	mockLog := mocks.NewMockLogger(ctrl)
	mockLog.EXPECT().Info(gomock.Any()).AnyTimes()

	store := resolver.NewStore(mockLoader, mockLog)
	a := app.New(store, resolver.NewResolver(), mockLog)

	version, err := a.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, "3", version)

	require.NoError(t, a.Refresh())

	version, err = a.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, "4", version)
}

func TestApp_SetRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load("/srv/shop").Return(testConfig(), nil).Times(1)

	mockLog := mocks.NewMockLogger(ctrl)
	mockLog.EXPECT().Info(gomock.Any()).AnyTimes()

	store := resolver.NewStore(mockLoader, mockLog)
	a := app.New(store, resolver.NewResolver(), mockLog)
	a.SetRoot("/srv/shop")

	_, err := a.CurrentVersion()
	require.NoError(t, err)
}
