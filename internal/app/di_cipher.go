package app

import (
	"fmt"

	cipherHTTP "github.com/allisson/ciphers/internal/cipher/http"
	cipherService "github.com/allisson/ciphers/internal/cipher/service"
	cipherUseCase "github.com/allisson/ciphers/internal/cipher/usecase"
)

// GridCache returns the Playfair grid cache, or nil when grid caching is disabled.
func (c *Container) GridCache() *cipherService.GridCache {
	c.gridCacheInit.Do(func() {
		if c.config.GridCacheEnabled {
			c.gridCache = cipherService.NewGridCache(c.config.GridCacheTTL)
		}
	})
	return c.gridCache
}

// CipherFactory returns the factory building ciphers from validated keys.
func (c *Container) CipherFactory() *cipherService.Factory {
	c.cipherFactoryInit.Do(func() {
		c.cipherFactory = cipherService.NewFactory(c.GridCache())
	})
	return c.cipherFactory
}

// TransformUseCase returns the transform dispatcher instance.
func (c *Container) TransformUseCase() (cipherUseCase.TransformUseCase, error) {
	var err error
	c.transformUseCaseInit.Do(func() {
		c.transformUseCase, err = c.initTransformUseCase()
		if err != nil {
			c.initErrors["transformUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["transformUseCase"]; exists {
		return nil, storedErr
	}
	return c.transformUseCase, nil
}

// CipherHandler returns the cipher HTTP handler instance.
func (c *Container) CipherHandler() (*cipherHTTP.CipherHandler, error) {
	var err error
	c.cipherHandlerInit.Do(func() {
		c.cipherHandler, err = c.initCipherHandler()
		if err != nil {
			c.initErrors["cipherHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cipherHandler"]; exists {
		return nil, storedErr
	}
	return c.cipherHandler, nil
}

// initTransformUseCase creates the dispatcher, wrapped with metrics when enabled.
func (c *Container) initTransformUseCase() (cipherUseCase.TransformUseCase, error) {
	baseUseCase := cipherUseCase.NewTransformUseCase(
		c.CipherFactory(),
		c.config.MaxPayloadBytes,
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for transform use case: %w", err)
		}
		return cipherUseCase.NewTransformUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initCipherHandler creates the cipher HTTP handler with all its dependencies.
func (c *Container) initCipherHandler() (*cipherHTTP.CipherHandler, error) {
	useCase, err := c.TransformUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get transform use case for cipher handler: %w", err)
	}

	return cipherHTTP.NewCipherHandler(useCase, int64(c.config.MaxPayloadBytes), c.Logger()), nil
}
