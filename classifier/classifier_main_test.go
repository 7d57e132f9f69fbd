package classifier

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/delta/pon-sentimen-dashboard/utils"
)

func TestMain(m *testing.M) {
	config := utils.GetConfiguration()
	utils.Init(config)

	logger = utils.Logger.WithFields(logrus.Fields{
		"module": "classifier.test",
	})

	os.Exit(m.Run())
}
