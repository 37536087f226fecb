// Package catalog содержит статические каталоги меню (обед и ужин)
// и настройки программы лояльности по умолчанию.
package catalog

import (
	"slices"

	"github.com/selvadigital/storefront-system/internal/model"
)

func ptr(v int64) *int64 { return &v }

// Напитки, детское меню, закуски и салаты общие для обоих вариантов меню.
var sharedDrinks = []model.Product{
	{ID: "beb1", Name: "Coca-Cola Original 1,5L", Description: "Garrafa 1,5L", PriceCents: 1490, CategoryID: "bebidas", ImageURL: "https://static.wixstatic.com/media/1f17f3_a1cf91de8c2a42888854f8a9dd1f0539~mv2.avif"},
	{ID: "beb2", Name: "Coca-Cola Sem Açúcar 1,5L", Description: "Garrafa 1,5L", PriceCents: 1490, CategoryID: "bebidas", ImageURL: "https://static.wixstatic.com/media/1f17f3_96178084ec1c4266bbe340d10b05c112~mv2.avif"},
	{ID: "beb3", Name: "Fanta Laranja 1,5L", Description: "Garrafa 1,5L", PriceCents: 1490, CategoryID: "bebidas", ImageURL: "https://static.wixstatic.com/media/1f17f3_7fd30548916743eaa34c9acc093097bf~mv2.avif"},
	{ID: "beb4", Name: "Schweppes Citrus 1,5L", Description: "Embalagem 1un", PriceCents: 1490, CategoryID: "bebidas", ImageURL: "https://static.wixstatic.com/media/1f17f3_dcb8d8dcffa1426b826fe64a107b09fa~mv2.avif"},
	{ID: "beb5", Name: "Suco Del Valle Uva (Lata)", Description: "Lata 290ml", PriceCents: 1290, CategoryID: "bebidas", ImageURL: "https://static.wixstatic.com/media/1f17f3_cd24346f19034ce8a242212c949baa2e~mv2.avif"},
	{ID: "beb6", Name: "Suco Del Valle Pêssego (Lata)", Description: "Lata 290ml", PriceCents: 1290, CategoryID: "bebidas", ImageURL: "https://static.wixstatic.com/media/1f17f3_cd00855bf81c4bc385e9fb18d4e21abf~mv2.avif"},
	{ID: "beb7", Name: "Limonada Mágica Morango com Mirtilo", Description: "Refrescante e cheia de sabor.", PriceCents: 1690, CategoryID: "bebidas", ImageURL: "https://static.wixstatic.com/media/1f17f3_024de054295d4cc4875a1c8b6b05bcdf~mv2.jpg"},
	{ID: "beb8", Name: "Coca-Cola Zero (Lata)", Description: "Lata 350ml", PriceCents: 1090, CategoryID: "bebidas", ImageURL: "https://static.wixstatic.com/media/1f17f3_71d1f1bf01bd45a190e0d9f52d4c4039~mv2.avif"},
	{ID: "beb9", Name: "Guaraná Antarctica (Lata)", Description: "Lata 350ml", PriceCents: 1090, CategoryID: "bebidas", ImageURL: "https://static.wixstatic.com/media/1f17f3_dcd278ae771a4004ab39753898481d9b~mv2.avif"},
	{ID: "beb10", Name: "Guaraná Antarctica Zero (Lata)", Description: "Lata 350ml", PriceCents: 1090, CategoryID: "bebidas", ImageURL: "https://static.wixstatic.com/media/1f17f3_8802cae9c28142d78e354228f5ff1020~mv2.avif"},
	{ID: "beb11", Name: "Guaraná Antarctica 1,5L", Description: "Garrafa 1,5L", PriceCents: 1490, CategoryID: "bebidas", ImageURL: "https://static.wixstatic.com/media/1f17f3_8ff007ee05344170b3cddc615d98522f~mv2.avif"},
	{ID: "beb12", Name: "Guaraná Antarctica Zero 1,5L", Description: "Garrafa 1,5L", PriceCents: 1490, CategoryID: "bebidas", ImageURL: "https://static.wixstatic.com/media/1f17f3_9834066f25f142dc9d6924ec28e93f03~mv2.avif"},
	{ID: "beb13", Name: "Limonada Mágica Kiwi com Maçã Verde", Description: "Refrescante e natural.", PriceCents: 1690, CategoryID: "bebidas", ImageURL: "https://static.wixstatic.com/media/1f17f3_21059eed7f6b45e58d390abcccefb702~mv2.jpg"},
	{ID: "beb14", Name: "Limonada Mágica Pêssego com Tangerina", Description: "Refrescante e cítrica.", PriceCents: 1690, CategoryID: "bebidas", ImageURL: "https://static.wixstatic.com/media/1f17f3_81f45e8fbfd6443389194df2c7744ad7~mv2.jpg"},
}

var sharedKids = []model.Product{
	{ID: "kid1", Name: "Muu Aventureiro", Description: "Arrozinho, feijão, carninha em cubos, ovo e batata frita!", PriceCents: 3990, CategoryID: "kids", ImageURL: "https://static.wixstatic.com/media/1f17f3_dba05d4563e148ad948fa4bfcc13861e~mv2.avif"},
	{ID: "kid2", Name: "Cocó Aventureiro", Description: "Arrozinho, feijão, franguinho empanado, ovo e batata frita!", PriceCents: 3590, CategoryID: "kids", ImageURL: "https://static.wixstatic.com/media/1f17f3_ef6066db9b854397ad90d19b37ff1d4f~mv2.avif"},
	{ID: "kid3", Name: "Combo Animal Kids", Description: "Hamburger com carne suculenta, queijo derretido e fritas.", PriceCents: 4990, CategoryID: "kids", ImageURL: "https://static.wixstatic.com/media/1f17f3_ad4a023dfccf4906a4033ca6f90be443~mv2.jpg"},
}

var sharedStarters = []model.Product{
	{ID: "ent1", Name: "Mini Pastéis (Duelo Selvagem)", Description: "10 mini pastéis: 5 de carne, 5 de queijo.", PriceCents: 4990, CategoryID: "entradas", ImageURL: "https://static.wixstatic.com/media/1f17f3_54517cceab8547bfb31d323ebb62788b~mv2.avif"},
	{ID: "ent2", Name: "Galinha Loka", Description: "Franguinhos crocantes (350g) com polenta e quiabo.", PriceCents: 5790, CategoryID: "entradas", ImageURL: "https://static.wixstatic.com/media/1f17f3_3391aab698784eaa8d85500cf06d9c9d~mv2.avif"},
	{ID: "ent3", Name: "Batata Frita (Aventura Crocante)", Description: "Batatas douradas (300g) com tempero secreto.", PriceCents: 3190, CategoryID: "entradas", ImageURL: "https://static.wixstatic.com/media/1f17f3_38ab52958e3443eda6ebe65b5d2fc8ca~mv2.avif"},
	{ID: "ent4", Name: "Picolé de Queijo", Description: "Crocante por fora, derretido por dentro.", PriceCents: 3490, CategoryID: "entradas", ImageURL: "https://static.wixstatic.com/media/1f17f3_7dbc5cf8dff542d5bf01296054e61c82~mv2.avif"},
}

var sharedSalads = []model.Product{
	{ID: "sal1", Name: "Paraíso Tropical", Description: "Mix de folhas, tartar de manga, sementes e grana padano.", PriceCents: 5490, CategoryID: "saladas", ImageURL: "https://static.wixstatic.com/media/1f17f3_6116ae3155a44d149b2e863078090836~mv2.avif"},
	{ID: "sal2", Name: "Selvapicão", Description: "Mix de folhas, salpicão de frango e azeite de frutas.", PriceCents: 5490, CategoryID: "saladas", ImageURL: "https://static.wixstatic.com/media/1f17f3_8bf7e51c371849a9933e50d1f82cfa15~mv2.avif"},
	{ID: "sal3", Name: "Selva Mar Aberto", Description: "Salada refrescante com frutos do mar.", PriceCents: 6990, CategoryID: "saladas", ImageURL: "https://static.wixstatic.com/media/1f17f3_3ab112db8c8c4e1c85c952b91fe0adbb~mv2.jpg"},
}

var lunchCategories = []model.Category{
	{ID: "banquete", Name: "Banquete Na Selva"},
	{ID: "almoco", Name: "Almoço na Selva"},
	{ID: "entradas", Name: "Entradas"},
	{ID: "saladas", Name: "Saladas"},
	{ID: "kids", Name: "Kids"},
	{ID: "bebidas", Name: "Bebidas"},
}

var lunchOnly = []model.Product{
	{ID: "banq1", Name: "Camarão Capixaba", Description: "Arroz cremoso de camarão (300g), gratinado e banana frita.", PriceCents: 15990, CategoryID: "banquete", IsPopular: true, ImageURL: "https://static.wixstatic.com/media/1f17f3_d9da3613355e4842b6fab6638580bac1~mv2.avif"},
	{ID: "banq2", Name: "Camarão Abravurado", Description: "Camarões grelhados na manteiga com ervas e alho, arroz de coco.", PriceCents: 16990, CategoryID: "banquete", ImageURL: "https://static.wixstatic.com/media/1f17f3_69e5d6c838be4fd48906583c30d5f208~mv2.avif"},
	{ID: "banq3", Name: "Lembrança De Vó", Description: "Carne de panela (450g), linguiça, bacon, arroz e feijão.", PriceCents: 13990, CategoryID: "banquete", ImageURL: "https://static.wixstatic.com/media/1f17f3_9ffce862ef41401f87a348d402ae88a9~mv2.avif"},
	{ID: "banq4", Name: "Parmegiana Animal", Description: "Parmegiana lendária de 500g! Filé suculento coberto.", PriceCents: 17990, CategoryID: "banquete", IsPopular: true, ImageURL: "https://static.wixstatic.com/media/1f17f3_2752642ffafc44e8987e4a796f81bc94~mv2.avif"},
	{ID: "banq5", Name: "Bobó De Camarão", Description: "Creme de aipim com leite de coco e camarões salteados.", PriceCents: 13900, CategoryID: "banquete", ImageURL: "https://static.wixstatic.com/media/1f17f3_8b80f29831524082b1332ef25c0ec4f9~mv2.jpg"},
	{ID: "alm1", Name: "Ancho da floresta", Description: "Bife ancho grelhado, risoni com cogumelos e crispy de alho-poró.", PriceCents: 8990, CategoryID: "almoco", ImageURL: "https://static.wixstatic.com/media/1f17f3_c7cd983b2fb849f69fff8aefb8bae36b~mv2.avif"},
	{ID: "alm2", Name: "Virado da Selva", Description: "Bistequinha suína, linguiça, farofa de milho, ovo e couve.", PriceCents: 5990, CategoryID: "almoco", ImageURL: "https://images.unsplash.com/photo-1604908177525-4524f28522e8?q=80&w=800&auto=format&fit=crop"},
	{ID: "alm3", Name: "Carne de Panela Da Selva", Description: "Carne de panela, arroz soltinho, feijão com bacon e farofa.", PriceCents: 5990, CategoryID: "almoco", ImageURL: "https://static.wixstatic.com/media/1f17f3_9ffce862ef41401f87a348d402ae88a9~mv2.avif"},
	{ID: "alm4", Name: "Picadinho Selva", Description: "Filé mignon em cubos ao molho roti, arroz branco e farofa.", PriceCents: 7990, CategoryID: "almoco", ImageURL: "https://images.unsplash.com/photo-1512058564366-18510be2db19?q=80&w=800&auto=format&fit=crop"},
	{ID: "alm5", Name: "Estrogonofe Selvagem", Description: "Filé mignon no creme de leite com toque de aipim. Acompanha arroz.", PriceCents: 7990, CategoryID: "almoco", ImageURL: "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?q=80&w=800&auto=format&fit=crop"},
}

var dinnerCategories = []model.Category{
	{ID: "destaques", Name: "Destaques"},
	{ID: "top1", Name: "Top 1 Sabor"},
	{ID: "amadas", Name: "Mais Amadas"},
	{ID: "entradas", Name: "Entradas"},
	{ID: "saladas", Name: "Saladas"},
	{ID: "kids", Name: "Kids"},
	{ID: "bebidas", Name: "Bebidas"},
}

var dinnerOnly = []model.Product{
	{ID: "dest1", Name: "Pizza 1/2 Portuguesa e 1/2 Frango Catupiry + Coca-Cola 1,5L", Description: "Metade Portuguesa, metade Frango com Catupiry. Acompanha Coca-Cola 1,5L gelada.", PriceCents: 8490, OriginalPriceCents: ptr(9990), CategoryID: "destaques", IsPopular: true, ImageURL: "https://static.wixstatic.com/media/1f17f3_079f2b7b9b6e4c68be0f4c0206c3d99a~mv2.jpeg"},
	{ID: "dest2", Name: "Pizza 1/2 Cupim Bravo e 1/2 Calabresa + Coca-Cola 1,5L", Description: "Metade Cupim Bravo desfiado, metade Calabresa. Acompanha Coca-Cola 1,5L gelada.", PriceCents: 8490, OriginalPriceCents: ptr(9990), CategoryID: "destaques", ImageURL: "https://static.wixstatic.com/media/1f17f3_6486b23cf2694a05ba9e9ee070d836cc~mv2.jpg"},
	{ID: "dest3", Name: "Pizza 1/2 Catupiry e 1/2 Calabresa + Coca-Cola 1,5L", Description: "Metade Frango com Catupiry, metade Calabresa. Acompanha Coca-Cola 1,5L gelada.", PriceCents: 8490, OriginalPriceCents: ptr(9990), CategoryID: "destaques", ImageURL: "https://static.wixstatic.com/media/1f17f3_e3ad4b4669fa4875b4d334ee15247c09~mv2.jpg"},
	{ID: "ama1", Name: "1/2 Catupiry e 1/2 Calabresa", Description: "Molho artesanal, muçarela, frango desfiado e requeijão / Calabresa.", PriceCents: 8490, CategoryID: "amadas", ImageURL: "https://static.wixstatic.com/media/1f17f3_a4701b439e1947898105b865994b6188~mv2.jpg"},
	{ID: "ama2", Name: "1/2 Cupim Bravo e 1/2 Calabresa", Description: "Molho artesanal, cupim desfiado, requeijão / Calabresa.", PriceCents: 8490, CategoryID: "amadas", ImageURL: "https://static.wixstatic.com/media/1f17f3_d8fbdc53f78240f38523fe71dbe0b4d5~mv2.jpg"},
	{ID: "ama3", Name: "1/2 Portuguesa e 1/2 Frango Catupiry", Description: "Clássica portuguesa / Frango com requeijão cremoso.", PriceCents: 8490, CategoryID: "amadas", ImageURL: "https://static.wixstatic.com/media/1f17f3_c88ecd163cd3465a86ef092a1a733463~mv2.avif"},
	{ID: "top1", Name: "Pizza Cupim Bravo G - 8 Fatias", Description: "Direto das fogueiras! Cupim desfiado, requeijão cremoso e cebola.", PriceCents: 9490, CategoryID: "top1", ImageURL: "https://static.wixstatic.com/media/1f17f3_9bf140e9380140b4a81c81666568a494~mv2.avif"},
	{ID: "top2", Name: "Pizza Explosão na Mata G - 8 Fatias", Description: "Fonduta de Grana Padano, bacon crocante, goiabada.", PriceCents: 7490, CategoryID: "top1", ImageURL: "https://static.wixstatic.com/media/1f17f3_68940af215a54c42981276f3ce4b06d7~mv2.avif"},
	{ID: "top3", Name: "Pizza Portuguesa G - 8 Fatias", Description: "Presunto, calabresa, ovos, cebola marinada.", PriceCents: 8490, CategoryID: "top1", ImageURL: "https://static.wixstatic.com/media/1f17f3_48e38c046a754a3eb65443d8ece30afe~mv2.avif"},
	{ID: "top4", Name: "Pizza Presunto de Parma G - 8 Fatias", Description: "Muçarela de búfala e presunto de Parma.", PriceCents: 9490, CategoryID: "top1", IsPopular: true, ImageURL: "https://static.wixstatic.com/media/1f17f3_7bfec300297e459cadac0a247d9136f4~mv2.avif"},
	{ID: "top5", Name: "Pizza Frango com Catupiry G", Description: "Frango desfiado temperado com o verdadeiro catupiry.", PriceCents: 8490, CategoryID: "top1", ImageURL: "https://static.wixstatic.com/media/1f17f3_0c827b87bcbf490faf45e82be73c8c29~mv2.avif"},
	{ID: "top6", Name: "Pizza Calabresa G", Description: "Calabresa fatiada, cebola e azeitonas.", PriceCents: 7990, CategoryID: "top1", ImageURL: "https://static.wixstatic.com/media/1f17f3_20b632f81c1d41869ec2e685bd47b862~mv2.jpg"},
	{ID: "top7", Name: "Pizza Brasa do Sertão G", Description: "Carne seca, banana da terra e queijo coalho.", PriceCents: 9490, CategoryID: "top1", ImageURL: "https://static.wixstatic.com/media/1f17f3_c7cd983b2fb849f69fff8aefb8bae36b~mv2.avif"},
}

func combine(groups ...[]model.Product) []model.Product {
	var res []model.Product
	for _, g := range groups {
		res = append(res, g...)
	}
	return res
}

// Active возвращает каталог (позиции и категории) для указанного варианта меню.
// Возвращаются копии: статические данные только для чтения.
func Active(variant model.MenuVariant) ([]model.Product, []model.Category) {
	if variant == model.MenuLunch {
		return combine(sharedStarters, sharedSalads, sharedKids, sharedDrinks, lunchOnly),
			slices.Clone(lunchCategories)
	}
	return combine(sharedStarters, sharedSalads, sharedKids, sharedDrinks, dinnerOnly),
		slices.Clone(dinnerCategories)
}

// DefaultLoyaltyConfig возвращает настройки программы лояльности по умолчанию.
func DefaultLoyaltyConfig() model.LoyaltyConfig {
	return model.LoyaltyConfig{
		Enabled:           true,
		PointsPerCurrency: 1,
		RedemptionRate:    0.05,
		MinPointsToRedeem: 50,
		WelcomeMessage:    "Bem-vindo à Selva! Junte pontos e troque por descontos.",
	}
}
