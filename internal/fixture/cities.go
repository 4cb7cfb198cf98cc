package fixture

import "github.com/dbsmedya/goloop/internal/chain"

// G30 Lianyungang–Khorgas Expressway, east to west. Ends at the border.
var g30 = []string{
	"Lianyungang, Jiangsu",
	"Xuzhou, Jiangsu",
	"Kaifeng, Henan",
	"Zhengzhou, Henan",
	"Weinan, Shaanxi",
	"Xi'an, Shaanxi",
	"Baoji, Shaanxi",
	"Tianshui, Gansu",
	"Lanzhou, Gansu",
	"Wuwei, Gansu",
	"Zhangye, Gansu",
	"Jiuquan, Gansu",
	"Hami, Xinjiang",
	"Ürümqi, Xinjiang",
	"Khorgas, Xinjiang",
}

// G4 Beijing–Hong Kong–Macau Expressway. The Macau spur branches off at
// Guangzhou, so Macau links back there.
var g4 = []string{
	"Beijing",
	"Baoding, Hebei",
	"Shijiazhuang, Hebei",
	"Handan, Hebei",
	"Xinxiang, Henan",
	"Zhengzhou, Henan",
	"Luohe, Henan",
	"Xinyang, Henan",
	"Wuhan, Hubei",
	"Xianning, Hubei",
	"Yueyang, Hunan",
	"Changsha, Hunan",
	"Zhuzhou, Hunan",
	"Hengyang, Hunan",
	"Chenzhou, Hunan",
	"Shaoguan, Guangdong",
	"Guangzhou, Guangdong",
	"Shenzhen, Guangdong",
	"Hong Kong",
	"Macau",
}

const g4Branch = 16 // Guangzhou

// G98 Hainan Ring Expressway, which closes back on Haikou.
var g98 = []string{
	"Haikou",
	"Ding'an County",
	"Qionghai",
	"Wanning",
	"Lingshui Li Autonomous County",
	"Sanya",
	"Ledong Li Autonomous County",
	"Dongfang",
	"Changjiang Li Autonomous County",
	"Danzhou",
	"Lingao County",
	"Chengmai County",
}

// fromValues appends values in order and, when loopTo >= 0, links the tail
// back to that index.
func fromValues(values []string, loopTo int) *chain.Chain {
	c := chain.New()
	for _, v := range values {
		c.Append(v)
	}
	if loopTo >= 0 {
		// Indexes here are constants within range.
		_ = c.LoopBack(loopTo)
	}
	return c
}

func builtins() []Fixture {
	return []Fixture{
		{
			Name:        "acyclic",
			Description: "G30 Lianyungang–Khorgas Expressway, ends at the border",
			Shape:       Acyclic,
			Build:       func() *chain.Chain { return fromValues(g30, -1) },
		},
		{
			Name:        "tail-loop",
			Description: "G4 Beijing–Hong Kong–Macau Expressway, Macau links back to Guangzhou",
			Shape:       TailLoop,
			Build:       func() *chain.Chain { return fromValues(g4, g4Branch) },
		},
		{
			Name:        "full-loop",
			Description: "G98 Hainan Ring Expressway, Chengmai links back to Haikou",
			Shape:       FullLoop,
			Build:       func() *chain.Chain { return fromValues(g98, 0) },
		},
		{
			Name:        "single",
			Description: "one node linking to none",
			Shape:       Acyclic,
			Build:       func() *chain.Chain { return fromValues([]string{"Haikou"}, -1) },
		},
		{
			Name:        "self-loop",
			Description: "one node linking to itself",
			Shape:       FullLoop,
			Build:       func() *chain.Chain { return fromValues([]string{"Haikou"}, 0) },
		},
	}
}
